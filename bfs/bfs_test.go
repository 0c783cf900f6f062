package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/graphene/bfs"
	"github.com/katalvlaran/graphene/builder"
	"github.com/katalvlaran/graphene/core"
)

// sheet returns a 4×8-cell periodic honeycomb (128 atoms).
func sheet(t *testing.T) *core.Lattice {
	t.Helper()
	l, err := builder.HoneycombCells(4, 8)
	if err != nil {
		t.Fatalf("HoneycombCells: %v", err)
	}
	return l
}

// path builds a 0–1–2–3–4 chain.
func path(t *testing.T) *core.Lattice {
	t.Helper()
	l := core.NewLattice(core.Box{Width: 100, Height: 100}, 1)
	for i := 0; i < 5; i++ {
		l.AddAtom(core.Carbon, core.Vec2{X: float64(i)})
	}
	for i := 0; i < 4; i++ {
		if _, err := l.AddBond(i, i+1); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	l := path(t)
	if _, err := bfs.BFS(l, 99); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(l, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Neighbors(l, 0, 0, bfs.Exact); !errors.Is(err, bfs.ErrBadDepth) {
		t.Errorf("depth 0: want ErrBadDepth, got %v", err)
	}
}

// TestBFS_PathDepthsAndParents covers order, depth, parent and PathTo on a chain.
func TestBFS_PathDepthsAndParents(t *testing.T) {
	res, err := bfs.BFS(path(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 1, 3, 0, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[0] != 2 || res.Depth[4] != 2 {
		t.Errorf("Depth = %v", res.Depth)
	}
	p, err := res.PathTo(0)
	if err != nil || !reflect.DeepEqual(p, []int{2, 1, 0}) {
		t.Errorf("PathTo(0) = %v, %v", p, err)
	}
	if _, ok := res.Parent[2]; ok {
		t.Error("root must have no parent")
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	l := path(t)
	res, err := bfs.BFS(l, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo(4); err == nil {
		t.Error("PathTo beyond MaxDepth should fail")
	}

	res, err = bfs.BFS(l, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	l := path(t)
	stop := errors.New("stop")
	_, err := bfs.BFS(l, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(l, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: got %v", err)
	}
}

// TestNeighbors_DepthOneIsDirect checks Exact depth 1 against NeighborIDs for every atom.
func TestNeighbors_DepthOneIsDirect(t *testing.T) {
	l := sheet(t)
	for _, id := range l.AtomIDs() {
		got, err := bfs.Neighbors(l, id, 1, bfs.Exact)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := l.NeighborIDs(id)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("atom %d: Exact(1) = %v; NeighborIDs = %v", id, got, want)
		}
	}
}

// TestNeighbors_InclusiveIsUnionOfShells checks shells 1..3 on the honeycomb.
func TestNeighbors_InclusiveIsUnionOfShells(t *testing.T) {
	l := sheet(t)
	wantShell := []int{3, 6, 9}
	for _, id := range []int{0, 17, 63, 127} {
		var union []int
		for d := 1; d <= 3; d++ {
			shell, err := bfs.Neighbors(l, id, d, bfs.Exact)
			if err != nil {
				t.Fatal(err)
			}
			if len(shell) != wantShell[d-1] {
				t.Errorf("atom %d shell %d size = %d; want %d", id, d, len(shell), wantShell[d-1])
			}
			union = append(union, shell...)
			sort.Ints(union)

			incl, err := bfs.Neighbors(l, id, d, bfs.Inclusive)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(incl, union) {
				t.Errorf("atom %d Inclusive(%d) = %v; union = %v", id, d, incl, union)
			}
		}
	}
}

func TestNeighborPaths(t *testing.T) {
	l := sheet(t)
	edges, err := bfs.NeighborPaths(l, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 9 {
		t.Fatalf("edges = %d; want 9 (3+6 tree edges)", len(edges))
	}
	for _, e := range edges {
		if e[0] >= e[1] || !l.HasBond(e[0], e[1]) {
			t.Errorf("edge %v is not an ordered lattice bond", e)
		}
	}
}

// TestNeighbors_OnView runs the query on an induced subgraph.
func TestNeighbors_OnView(t *testing.T) {
	v := path(t).Induced([]int{0, 1, 2})
	got, err := bfs.Neighbors(v, 0, 5, bfs.Inclusive)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("view Inclusive = %v; want %v", got, want)
	}
}
