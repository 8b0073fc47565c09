package skillgraph

import (
	"math"
	"math/rand"
)

// DefaultSeed is the layout seed used by the CLI. Fixed so the same roadmap
// always renders the same picture.
const DefaultSeed = 42

const (
	layoutIterations = 50
	minDistance      = 1e-9
)

// Point is a node position in the plane.
type Point struct {
	X float64
	Y float64
}

// Layout maps node identity to its position. Coordinates are centered on the
// origin and scaled into [-1, 1].
type Layout map[string]Point

// SpringLayout computes a force-directed placement of the graph using a
// seeded Fruchterman-Reingold spring embedding. The same topology and seed
// produce the same coordinates up to floating point noise.
//
// The empty graph yields an empty layout; a single node sits at the origin.
// math/rand with an explicit source keeps the initial placement reproducible.
func SpringLayout(g *Graph, seed int64) Layout {
	n := len(g.Nodes)
	layout := make(Layout, n)
	if n == 0 {
		return layout
	}
	if n == 1 {
		layout[g.Nodes[0].ID] = Point{}
		return layout
	}

	rng := rand.New(rand.NewSource(seed))

	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}
	}

	// Optimal pairwise distance for a unit frame.
	k := math.Sqrt(1.0 / float64(n))

	// Initial temperature and linear cooling schedule.
	temp := 0.1
	cool := temp / float64(layoutIterations+1)

	edges := edgeIndices(g)

	disp := make([]Point, n)
	for iter := 0; iter < layoutIterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		// Repulsion between every node pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				dist := math.Hypot(dx, dy)
				if dist < minDistance {
					dist = minDistance
				}
				force := k * k / (dist * dist)
				disp[i].X += dx * force
				disp[i].Y += dy * force
				disp[j].X -= dx * force
				disp[j].Y -= dy * force
			}
		}

		// Attraction along edges.
		for _, e := range edges {
			dx := pos[e[0]].X - pos[e[1]].X
			dy := pos[e[0]].Y - pos[e[1]].Y
			dist := math.Hypot(dx, dy)
			if dist < minDistance {
				dist = minDistance
			}
			pull := dist * dist / k
			disp[e[0]].X -= dx / dist * pull
			disp[e[0]].Y -= dy / dist * pull
			disp[e[1]].X += dx / dist * pull
			disp[e[1]].Y += dy / dist * pull
		}

		// Move, capped by the current temperature.
		for i := 0; i < n; i++ {
			length := math.Hypot(disp[i].X, disp[i].Y)
			if length < minDistance {
				continue
			}
			step := math.Min(length, temp)
			pos[i].X += disp[i].X / length * step
			pos[i].Y += disp[i].Y / length * step
		}

		temp -= cool
	}

	rescale(pos)

	for i, node := range g.Nodes {
		layout[node.ID] = pos[i]
	}
	return layout
}

// edgeIndices resolves edge endpoints to node indices once, since the inner
// loop runs every iteration.
func edgeIndices(g *Graph) [][2]int {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}

	out := make([][2]int, 0, len(g.Edges))
	for _, e := range g.Edges {
		from, okFrom := index[e.From]
		to, okTo := index[e.To]
		if !okFrom || !okTo {
			continue
		}
		out = append(out, [2]int{from, to})
	}
	return out
}

// rescale centers the positions on the origin and scales the largest
// coordinate magnitude to 1.
func rescale(pos []Point) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var max float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		max = math.Max(max, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}

	if max < minDistance {
		return
	}
	for i := range pos {
		pos[i].X /= max
		pos[i].Y /= max
	}
}
