package hybridastar

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/viam-labs/trailerplan/geom2d"
)

func chainNode(key Key, parent Key, hasParent bool, samples ...geom2d.Pose) *node {
	return &node{key: key, parent: parent, hasParent: hasParent, samples: samples}
}

func TestReconstructStitchesChainDroppingSeamPoses(t *testing.T) {
	root := chainNode(Key{IX: 0}, Key{}, false, geom2d.Pose{Point: r2.Point{X: 0}})
	mid := chainNode(Key{IX: 1}, root.key, true,
		geom2d.Pose{Point: r2.Point{X: 0}}, geom2d.Pose{Point: r2.Point{X: 1}})
	terminal := chainNode(Key{IX: 2}, mid.key, true,
		geom2d.Pose{Point: r2.Point{X: 1}}, geom2d.Pose{Point: r2.Point{X: 2}})

	closed := map[Key]*node{root.key: root, mid.key: mid, terminal.key: terminal}
	res := &Result{terminal: terminal, closed: closed}

	path, err := Reconstruct(res)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 3)
	test.That(t, path[0].Point.X, test.ShouldEqual, float64(0))
	test.That(t, path[1].Point.X, test.ShouldEqual, float64(1))
	test.That(t, path[2].Point.X, test.ShouldEqual, float64(2))
}

func TestReconstructAppendsAnalyticClosingSegmentDroppingSeam(t *testing.T) {
	root := chainNode(Key{IX: 0}, Key{}, false, geom2d.Pose{Point: r2.Point{X: 0}})
	closed := map[Key]*node{root.key: root}
	closing := &analyticSegment{samples: []geom2d.Pose{
		{Point: r2.Point{X: 0}},
		{Point: r2.Point{X: 5}},
		{Point: r2.Point{X: 10}},
	}}
	res := &Result{terminal: root, closed: closed, closing: closing}

	path, err := Reconstruct(res)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 3)
	test.That(t, path[len(path)-1].Point.X, test.ShouldEqual, float64(10))
}

func TestReconstructErrorsOnMissingParent(t *testing.T) {
	orphan := chainNode(Key{IX: 9}, Key{IX: 99}, true, geom2d.Pose{})
	res := &Result{terminal: orphan, closed: map[Key]*node{}}

	_, err := Reconstruct(res)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReconstructErrorsOnEmptyClosingSegment(t *testing.T) {
	root := chainNode(Key{IX: 0}, Key{}, false, geom2d.Pose{})
	closed := map[Key]*node{root.key: root}
	res := &Result{terminal: root, closed: closed, closing: &analyticSegment{}}

	_, err := Reconstruct(res)
	test.That(t, err, test.ShouldNotBeNil)
}
