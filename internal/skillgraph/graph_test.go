package skillgraph

import (
	"reflect"
	"testing"

	"github.com/spigell/skill2success/internal/roadmap"
)

func testRoadmap(careers []string, skillsByTier map[roadmap.Tier][]string) *roadmap.Roadmap {
	rm := &roadmap.Roadmap{
		SkillsByTier: make(map[roadmap.Tier][]roadmap.SkillItem),
	}
	for _, title := range careers {
		rm.Careers = append(rm.Careers, roadmap.CareerPath{Title: title})
	}
	for tier, names := range skillsByTier {
		for _, name := range names {
			rm.SkillsByTier[tier] = append(rm.SkillsByTier[tier], roadmap.SkillItem{Name: name})
		}
	}
	return rm
}

func TestBuildCompleteBipartite(t *testing.T) {
	rm := testRoadmap([]string{"Data Analyst"}, map[roadmap.Tier][]string{
		roadmap.TierHigh: {"SQL"},
	})

	g := Build([]string{"Python"}, rm)

	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d: %+v", len(g.Nodes), g.Nodes)
	}

	wantEdges := []Edge{
		{From: "Python", To: "Data Analyst"},
		{From: "SQL", To: "Data Analyst"},
	}
	if !reflect.DeepEqual(g.Edges, wantEdges) {
		t.Fatalf("unexpected edges: %+v", g.Edges)
	}

	if len(g.Skills()) != 2 || len(g.Careers()) != 1 {
		t.Fatalf("unexpected partitions: skills=%v careers=%v", g.Skills(), g.Careers())
	}
}

func TestBuildDeduplicatesSkills(t *testing.T) {
	rm := testRoadmap([]string{"ML Engineer", "Data Analyst"}, map[roadmap.Tier][]string{
		roadmap.TierHigh:   {"Python", "SQL"},
		roadmap.TierMedium: {"Python"},
	})

	g := Build([]string{"Python", "Communication"}, rm)

	// Python appears three times across sources but is one node.
	if len(g.Skills()) != 3 {
		t.Fatalf("expected 3 skill nodes, got %v", g.Skills())
	}

	// 3 skills x 2 careers.
	if len(g.Edges) != 6 {
		t.Fatalf("expected 6 edges, got %d", len(g.Edges))
	}
}

func TestBuildCareerWinsKindCollision(t *testing.T) {
	rm := testRoadmap([]string{"DevOps"}, map[roadmap.Tier][]string{
		roadmap.TierHigh: {"DevOps", "Terraform"},
	})

	g := Build(nil, rm)

	if len(g.Nodes) != 2 {
		t.Fatalf("colliding name must stay a single node, got %+v", g.Nodes)
	}

	for _, n := range g.Nodes {
		if n.ID == "DevOps" && n.Kind != KindCareer {
			t.Fatalf("expected career kind to win, got %v", n.Kind)
		}
	}

	if got := g.Collisions(); !reflect.DeepEqual(got, []string{"DevOps"}) {
		t.Fatalf("expected collision to be recorded, got %v", got)
	}

	// The collided node is a career, so only Terraform->DevOps remains and
	// there is no self loop.
	wantEdges := []Edge{{From: "Terraform", To: "DevOps"}}
	if !reflect.DeepEqual(g.Edges, wantEdges) {
		t.Fatalf("unexpected edges: %+v", g.Edges)
	}
}

func TestBuildDegenerateSets(t *testing.T) {
	t.Run("no careers", func(t *testing.T) {
		rm := testRoadmap(nil, map[roadmap.Tier][]string{roadmap.TierLow: {"SQL"}})
		g := Build([]string{"Python"}, rm)

		if len(g.Nodes) != 2 || len(g.Edges) != 0 {
			t.Fatalf("expected skill nodes and no edges, got nodes=%v edges=%v", g.Nodes, g.Edges)
		}
	})

	t.Run("no skills", func(t *testing.T) {
		rm := testRoadmap([]string{"Data Analyst"}, nil)
		g := Build(nil, rm)

		if len(g.Nodes) != 1 || len(g.Edges) != 0 {
			t.Fatalf("expected one career node and no edges, got nodes=%v edges=%v", g.Nodes, g.Edges)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		g := Build(nil, testRoadmap(nil, nil))

		if !g.Empty() || len(g.Edges) != 0 {
			t.Fatalf("expected empty graph, got %+v", g)
		}
	})
}

func TestBuildSkipsEmptyNames(t *testing.T) {
	g := Build([]string{"", "Python"}, testRoadmap(nil, nil))

	if len(g.Nodes) != 1 || g.Nodes[0].ID != "Python" {
		t.Fatalf("empty names must be skipped, got %+v", g.Nodes)
	}
}

func TestBuildOrderIsDeterministic(t *testing.T) {
	rm := testRoadmap([]string{"Data Analyst", "ML Engineer"}, map[roadmap.Tier][]string{
		roadmap.TierHigh:   {"SQL"},
		roadmap.TierMedium: {"Pandas"},
		roadmap.TierLow:    {"Airflow"},
	})

	first := Build([]string{"Python"}, rm)
	second := Build([]string{"Python"}, rm)

	if !reflect.DeepEqual(first.Nodes, second.Nodes) || !reflect.DeepEqual(first.Edges, second.Edges) {
		t.Fatalf("expected identical build output across runs")
	}

	wantOrder := []string{"Python", "SQL", "Pandas", "Airflow", "Data Analyst", "ML Engineer"}
	for i, n := range first.Nodes {
		if n.ID != wantOrder[i] {
			t.Fatalf("unexpected node order: %+v", first.Nodes)
		}
	}
}
