package tree

import (
	"reflect"
	"testing"

	"github.com/gscearl/go-dgtile/geom"
)

func TestRefineChildPositions(t *testing.T) {
	n := &Node{Pt: Point{Depth: 1, IJK: geom.Vec3i{1, 0, 1}}}
	n.Refine(3)
	want := []geom.Vec3i{
		{2, 0, 2}, {3, 0, 2}, {2, 1, 2}, {3, 1, 2},
		{2, 0, 3}, {3, 0, 3}, {2, 1, 3}, {3, 1, 3},
	}
	for c, w := range want {
		child := n.Children[c]
		if child == nil {
			t.Fatalf("child %d is nil", c)
		}
		if child.Pt.Depth != 2 {
			t.Errorf("child %d depth = %d, want 2", c, child.Pt.Depth)
		}
		if child.Pt.IJK != w {
			t.Errorf("child %d ijk = %v, want %v", c, child.Pt.IJK, w)
		}
	}
}

func TestRefine2DLeavesUpperSlotsNil(t *testing.T) {
	n := &Node{}
	n.Refine(2)
	for c := 4; c < MaxChildren; c++ {
		if n.Children[c] != nil {
			t.Errorf("child slot %d populated for 2D refine", c)
		}
	}
	if n.IsLeaf() {
		t.Error("refined node still reports leaf")
	}
}

// TestCollectLeavesOrder refines one child of the root and checks the
// canonical order: pre-order, children in slot order, so the refined
// child's grandchildren appear in place of it.
func TestCollectLeavesOrder(t *testing.T) {
	root := &Node{}
	root.Refine(2)
	root.Children[1].Refine(2)
	tr := &Tree{Base: Point{IJK: geom.Vec3i{1, 1, 0}}, Dim: 2, Root: root}

	var got []Point
	for _, leaf := range CollectLeaves(tr) {
		got = append(got, leaf.Pt)
	}
	want := []Point{
		{1, geom.Vec3i{0, 0, 0}},
		{2, geom.Vec3i{2, 0, 0}},
		{2, geom.Vec3i{3, 0, 0}},
		{2, geom.Vec3i{2, 1, 0}},
		{2, geom.Vec3i{3, 1, 0}},
		{1, geom.Vec3i{0, 1, 0}},
		{1, geom.Vec3i{1, 1, 0}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectLeaves() order = %v, want %v", got, want)
	}
}

func TestCollectLeavesDeterministic(t *testing.T) {
	root := &Node{}
	root.Refine(3)
	root.Children[5].Refine(3)
	tr := &Tree{Dim: 3, Root: root}
	a := CollectLeaves(tr)
	b := CollectLeaves(tr)
	if !reflect.DeepEqual(a, b) {
		t.Error("two collections of the same tree disagree")
	}
}

func TestBlockDomain(t *testing.T) {
	type args struct {
		base   Point
		pt     Point
		domain geom.Box3
	}
	unit := geom.Box3{Lower: geom.Vec3{}, Upper: geom.Vec3{1, 1, 1}}
	tests := []struct {
		name string
		args args
		want geom.Box3
	}{
		{
			"root block covers the domain",
			args{Point{0, geom.Vec3i{1, 1, 1}}, Point{0, geom.Vec3i{0, 0, 0}}, unit},
			unit,
		},
		{
			"depth one quadrant",
			args{Point{0, geom.Vec3i{1, 1, 1}}, Point{1, geom.Vec3i{1, 0, 1}}, unit},
			geom.Box3{Lower: geom.Vec3{0.5, 0, 0.5}, Upper: geom.Vec3{1, 0.5, 1}},
		},
		{
			"non-square base grid",
			args{Point{0, geom.Vec3i{2, 1, 1}}, Point{1, geom.Vec3i{3, 1, 0}}, unit},
			geom.Box3{Lower: geom.Vec3{0.75, 0.5, 0}, Upper: geom.Vec3{1, 1, 0.5}},
		},
		{
			"degenerate z axis stays degenerate",
			args{Point{0, geom.Vec3i{1, 1, 0}}, Point{1, geom.Vec3i{1, 1, 0}},
				geom.Box3{Lower: geom.Vec3{}, Upper: geom.Vec3{1, 1, 0}}},
			geom.Box3{Lower: geom.Vec3{0.5, 0.5, 0}, Upper: geom.Vec3{1, 1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockDomain(tt.args.base, tt.args.pt, tt.args.domain); got != tt.want {
				t.Errorf("BlockDomain() = %v, want %v", got, tt.want)
			}
		})
	}
}
