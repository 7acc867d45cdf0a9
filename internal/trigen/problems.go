package trigen

import (
	"fmt"

	"github.com/npillmayer/trigon"
	"github.com/npillmayer/trigon/triangle"
)

// Difficulty groups the partial triangles derived from a reference.
type Difficulty int

// Difficulty levels of problems.
const (
	Basic    Difficulty = iota // SSS, SAS and ASA/AAS
	Advanced                   // over-determined: more than three metrics known
	HardEdge                   // SSA, including the ambiguous and the degenerate case
)

func (d Difficulty) String() string {
	switch d {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	case HardEdge:
		return "hard-edge"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Problem is a reference triangle with some metrics removed.
type Problem struct {
	Reference Reference
	Mask      uint8 // bits 0..2: sides a, b, c; bits 3..5: angles A, B, C
	Given     triangle.Triangle
	Choice    triangle.AmbiguousCaseSolution // selects the reference in ambiguous cases
	Ambiguous bool
}

func (p Problem) String() string {
	return fmt.Sprintf("%s given %s (choice=%s)", p.Reference.Kind, p.Given, p.Choice)
}

// Restrict removes all metrics of t whose bit in mask is not set.
func Restrict(t triangle.Triangle, mask uint8) triangle.Triangle {
	for v := triangle.A; v <= triangle.C; v++ {
		if mask&(1<<uint(v)) == 0 {
			t = t.WithoutSide(v)
		}
		if mask&(1<<uint(3+v)) == 0 {
			t = t.WithoutAngle(v)
		}
	}
	return t
}

// Problems derives all solvable partial triangles of a difficulty from a
// reference triangle.
func Problems(ref Reference, level Difficulty) []Problem {
	var problems []Problem
	for mask := uint8(0); mask < 64; mask++ {
		given := Restrict(ref.Triangle, mask)
		if levelOf(given) != level {
			continue
		}
		p := Problem{Reference: ref, Mask: mask, Given: given}
		if level == HardEdge {
			p.Ambiguous, p.Choice = ssaChoice(ref.Triangle, given)
		}
		problems = append(problems, p)
	}
	tracer().Debugf("%d %s problems for %s", len(problems), level, ref)
	return problems
}

// levelOf returns the difficulty of a partial triangle, or -1 if it is not
// solvable.
func levelOf(t triangle.Triangle) Difficulty {
	sides, angles := t.KnownSides(), t.KnownAngles()
	switch {
	case sides == 0 || sides+angles < 3:
		return -1
	case sides+angles > 3:
		return Advanced
	case triangle.Classify(t) == triangle.CaseSSA:
		return HardEdge
	}
	return Basic
}

// ssaChoice finds out if an SSA configuration has two solutions and, if
// so, which of them is the reference triangle.
func ssaChoice(full, given triangle.Triangle) (bool, triangle.AmbiguousCaseSolution) {
	var known, other triangle.Vertex
	for v := triangle.A; v <= triangle.C; v++ {
		if given.HasAngle(v) {
			known = v
		}
	}
	for v := triangle.A; v <= triangle.C; v++ {
		if v != known && given.HasSide(v) {
			other = v
		}
	}
	x, _ := full.Side(known)
	y, _ := full.Side(other)
	expected, _ := full.Angle(other)
	if !trigon.IsLess(x, y) || trigon.IsEqual(expected, 90) {
		return false, triangle.NoSolution
	}
	if expected < 90 {
		return true, triangle.FirstSolution
	}
	return true, triangle.SecondSolution
}
