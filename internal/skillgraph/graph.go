// Package skillgraph derives the skill→career relationship graph from a
// normalized roadmap and computes a deterministic 2-D layout for it.
package skillgraph

import (
	"github.com/spigell/skill2success/internal/roadmap"
)

// Kind discriminates the two node partitions.
type Kind int

const (
	KindSkill Kind = iota
	KindCareer
)

func (k Kind) String() string {
	switch k {
	case KindSkill:
		return "skill"
	case KindCareer:
		return "career"
	default:
		return "unknown"
	}
}

// Node is a single graph node. Identity is the display string: two entries
// with the same name are the same node regardless of kind.
type Node struct {
	ID   string
	Kind Kind
}

// Label returns the render label for the node.
func (n Node) Label() string { return n.ID }

// Edge is a directed skill→career edge.
type Edge struct {
	From string
	To   string
}

// Graph is the bipartite skill→career graph. Nodes and Edges keep their
// insertion order, which makes downstream layout and rendering reproducible.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index      map[string]int
	collisions []string
}

// Build constructs the complete bipartite graph between skills and careers.
//
// The skill partition is the union of the user-selected skills and every
// recommended skill across all tiers, deduplicated by exact name. The career
// partition is every recommended career title. Every skill node is connected
// to every career node; the generator's implicit per-career skill relevance is
// deliberately not used to restrict edges.
//
// When a name appears both as a skill and as a career title, the career
// assignment wins and the node is counted once. Collisions are recorded and
// reported by Collisions so the caller can warn.
func Build(selected []string, rm *roadmap.Roadmap) *Graph {
	g := &Graph{index: make(map[string]int)}

	for _, name := range selected {
		g.addNode(name, KindSkill)
	}
	for _, name := range rm.SkillNames() {
		g.addNode(name, KindSkill)
	}
	for _, title := range rm.CareerTitles() {
		g.addNode(title, KindCareer)
	}

	for _, skill := range g.Nodes {
		if skill.Kind != KindSkill {
			continue
		}
		for _, career := range g.Nodes {
			if career.Kind != KindCareer {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: skill.ID, To: career.ID})
		}
	}

	return g
}

func (g *Graph) addNode(name string, kind Kind) {
	if name == "" {
		return
	}

	if i, ok := g.index[name]; ok {
		// Careers win kind collisions; the node keeps its position.
		if kind == KindCareer && g.Nodes[i].Kind == KindSkill {
			g.Nodes[i].Kind = KindCareer
			g.collisions = append(g.collisions, name)
		}
		return
	}

	g.index[name] = len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: name, Kind: kind})
}

// Skills returns the skill partition in insertion order.
func (g *Graph) Skills() []Node {
	return g.byKind(KindSkill)
}

// Careers returns the career partition in insertion order.
func (g *Graph) Careers() []Node {
	return g.byKind(KindCareer)
}

func (g *Graph) byKind(kind Kind) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Collisions returns names that were recommended both as a skill and as a
// career title. Such nodes are tagged KindCareer.
func (g *Graph) Collisions() []string {
	return g.collisions
}

// Empty reports whether the graph has no nodes at all.
func (g *Graph) Empty() bool {
	return len(g.Nodes) == 0
}
