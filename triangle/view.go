package triangle

import (
	"math"

	"github.com/npillmayer/trigon"
)

// Positions within a rotated view.
const (
	posA = 0
	posB = 1
	posC = 2
)

// notFound is returned by the index finders if no slot qualifies.
const notFound = -1

// The three cyclic permutations of (A,B,C). Rotation k maps view
// position i to absolute index rotations[k][i], i.e. rotation k brings
// vertex k into position A. Sides and angles share the permutation, so
// a side and its opposite angle always stay aligned.
var rotations = [3][3]int{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
}

// A rotating view onto a triangle. It aliases the triangle and must not
// outlive it. All writes go through to the underlying triangle.
//
// Index finders always report absolute indices (rotation 0), whereas
// getters and setters address positions of the current rotation. Callers
// bring a slot into position A by rotating to its absolute index.
type view struct {
	t   *Triangle
	rot int
}

func newView(t *Triangle) *view {
	return &view{t: t}
}

func normalizeRotation(k int) int {
	return ((k % 3) + 3) % 3
}

// rotate switches the view to rotation k (mod 3).
func (tri *view) rotate(k int) {
	tri.rot = normalizeRotation(k)
}

// abs maps a view position to an absolute index.
func (tri *view) abs(pos int) int {
	return rotations[tri.rot][pos]
}

// side returns the side at view position pos, NaN if absent.
func (tri *view) side(pos int) float64 {
	if s, ok := tri.t.get(tri.abs(pos)); ok {
		return s
	}
	return math.NaN()
}

// angle returns the angle at view position pos, NaN if absent.
func (tri *view) angle(pos int) float64 {
	if a, ok := tri.t.get(angleSlot + tri.abs(pos)); ok {
		return a
	}
	return math.NaN()
}

func (tri *view) hasSide(pos int) bool {
	return tri.t.knownSide(tri.abs(pos))
}

func (tri *view) hasAngle(pos int) bool {
	_, ok := tri.t.get(angleSlot + tri.abs(pos))
	return ok
}

func (tri *view) setSide(pos int, s float64) {
	tri.t.set(tri.abs(pos), s)
}

func (tri *view) setAngle(pos int, a float64) {
	tri.t.set(angleSlot+tri.abs(pos), a)
}

// --- Counting and searching, independent of rotation ----------------------

func (tri *view) knownSideCount() int {
	n := 0
	for i := 0; i < 3; i++ {
		if tri.t.knownSide(i) {
			n++
		}
	}
	return n
}

func (tri *view) knownAngleCount() int {
	n := 0
	for i := 0; i < 3; i++ {
		if _, ok := tri.t.get(angleSlot + i); ok {
			n++
		}
	}
	return n
}

// Find the first absolute index i for which pred(i) holds.
func findIndex(pred func(int) bool) int {
	for i := 0; i < 3; i++ {
		if pred(i) {
			return i
		}
	}
	return notFound
}

func (tri *view) absAngleKnown(i int) bool {
	_, ok := tri.t.get(angleSlot + i)
	return ok
}

func (tri *view) findFirstKnownSideIndex() int {
	return findIndex(tri.t.knownSide)
}

func (tri *view) findFirstUnknownSideIndex() int {
	return findIndex(func(i int) bool { return !tri.t.knownSide(i) })
}

func (tri *view) findFirstKnownAngleIndex() int {
	return findIndex(tri.absAngleKnown)
}

func (tri *view) findFirstUnknownAngleIndex() int {
	return findIndex(func(i int) bool { return !tri.absAngleKnown(i) })
}

// findSolvedAngleSidePair finds a vertex where both the side and its
// opposite angle are known.
func (tri *view) findSolvedAngleSidePair() int {
	return findIndex(func(i int) bool {
		return tri.t.knownSide(i) && tri.absAngleKnown(i)
	})
}

// findUnsolvedAngleSidePair finds a vertex where the angle is known but
// its opposite side is not.
func (tri *view) findUnsolvedAngleSidePair() int {
	return findIndex(func(i int) bool {
		return !tri.t.knownSide(i) && tri.absAngleKnown(i)
	})
}

func (tri *view) findLargestSideIndex() int {
	largest, longest := notFound, 0.0
	for i := 0; i < 3; i++ {
		if !tri.t.knownSide(i) {
			continue
		}
		if s, _ := tri.t.get(i); largest == notFound || s > longest {
			largest, longest = i, s
		}
	}
	return largest
}

// isSolved checks that all six metrics (radians) describe a proper
// triangle: finite, positive sides and angles strictly between 0 and π.
func (tri *view) isSolved() bool {
	for i := 0; i < 3; i++ {
		s, ok := tri.t.get(i)
		if !ok || !trigon.IsFinite(s) || !trigon.IsGreater(s, 0) {
			return false
		}
		a, ok := tri.t.get(angleSlot + i)
		if !ok || !trigon.IsFinite(a) || !trigon.IsGreater(a, 0) || !trigon.IsLess(a, math.Pi) {
			return false
		}
	}
	return true
}
