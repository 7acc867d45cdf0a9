package triangle

import (
	"math"

	"github.com/npillmayer/trigon"
)

// All solvers operate on a view in radians. They expect the view to be
// rotated such that the vertex of interest is at position A, if not noted
// otherwise. Solvers report false if the data turns out to describe no
// triangle.

// solveAngleSum completes the third angle, given two of them.
func solveAngleSum(tri *view, log Sink) bool {
	log.Log(LevelTrace, "2 angles known, calculating the third angle")
	tri.rotate(tri.findFirstUnknownAngleIndex())
	third := math.Pi - tri.angle(posB) - tri.angle(posC)
	tri.setAngle(posA, third)
	if trigon.IsLessOrEqual(third, 0) {
		logf(log, LevelWarn, "angles %g and %g leave no room for a third angle",
			trigon.Rad2Deg(tri.angle(posB)), trigon.Rad2Deg(tri.angle(posC)))
		return false
	}
	return true
}

// checkAngleSum checks that three known angles add up to π.
func checkAngleSum(tri *view, log Sink) bool {
	sum := tri.angle(posA) + tri.angle(posB) + tri.angle(posC)
	if !trigon.IsEqual(sum, math.Pi) {
		logf(log, LevelWarn, "angles add up to %g°, not 180°", trigon.Rad2Deg(sum))
		return false
	}
	return true
}

// solveAnglesWithSides solves the missing angles of a triangle with all
// sides known (and at most one angle known).
//
// The angle opposite to the largest side is found by the law of cosines
//
//	cos(A) = (b² + c² − a²) / 2bc
//
// It is the only angle which may be obtuse, so the remaining angles can
// safely be found by the law of sines, sin(B) = b·sin(A)/a. The last angle
// is completed by the angle sum, avoiding a second inverse sine.
//
// Rotates the view to the largest side.
func solveAnglesWithSides(tri *view, log Sink) bool {
	log.Log(LevelTrace, "all sides known, solving angles by the law of cosines and the law of sines")
	tri.rotate(tri.findLargestSideIndex())
	a, b, c := tri.side(posA), tri.side(posB), tri.side(posC)
	if !tri.hasAngle(posA) {
		num := math.FMA(b, b, math.FMA(c, c, -(a * a))) // b² + c² − a²
		cosA := num / (2 * b * c)
		if trigon.IsLess(cosA, -1) || trigon.IsGreater(cosA, 1) {
			logf(log, LevelWarn, "sides %g, %g, %g violate the triangle inequality", a, b, c)
			return false
		}
		tri.setAngle(posA, math.Acos(trigon.Clamp(cosA, -1, 1)))
	}
	ratio := math.Sin(tri.angle(posA)) / a
	if !tri.hasAngle(posB) {
		if tri.knownAngleCount() == 2 {
			tri.setAngle(posB, math.Pi-tri.angle(posA)-tri.angle(posC))
			return true
		}
		sinB := trigon.Clamp(b*ratio, -1, 1)
		tri.setAngle(posB, math.Asin(sinB))
		if !tri.hasAngle(posC) {
			tri.setAngle(posC, math.Pi-tri.angle(posA)-tri.angle(posB))
		}
	} else if !tri.hasAngle(posC) {
		tri.setAngle(posC, math.Pi-tri.angle(posA)-tri.angle(posB))
	}
	return true
}

// solveSideWithAngleCos solves side a from sides b, c and the included
// angle A by the law of cosines,
//
//	a² = b² + c² − 2bc·cos(A)
func solveSideWithAngleCos(tri *view, log Sink) {
	log.Log(LevelTrace, "2 sides and the included angle known, solving the third side by the law of cosines")
	b, c := tri.side(posB), tri.side(posC)
	sub := 2 * b * c * math.Cos(tri.angle(posA))
	sq := math.FMA(b, b, math.FMA(c, c, -sub))
	tri.setSide(posA, math.Sqrt(math.Max(0, sq)))
}

// solveSides solves missing sides by the law of sines, given all angles
// and side a:
//
//	b = a·sin(B)/sin(A)
//
// Sides already known are left untouched.
func solveSides(tri *view, log Sink) {
	log.Log(LevelTrace, "all angles known, solving sides by the law of sines")
	a, sinA := tri.side(posA), math.Sin(tri.angle(posA))
	for _, pos := range []int{posB, posC} {
		if !tri.hasSide(pos) {
			tri.setSide(pos, a*math.Sin(tri.angle(pos))/sinA)
		}
	}
}

// ssaHeight returns h = r·sin(A), the minimum length of side a for which
// a triangle with angle A and reference side r exists.
func ssaHeight(r, angleA float64) float64 {
	return r * math.Sin(angleA)
}

// resolveSSA solves the angle opposite to the second known side of an SSA
// configuration. The view is rotated to have the known angle at A.
//
// Returns ok=false if there is no such triangle, and ambiguous=true if the
// data allows for two triangles. Then the choice selects which one is
// solved for: the second solution is the supplement of the first one.
func resolveSSA(tri *view, choice AmbiguousCaseSolution, log Sink) (ok bool, ambiguous bool) {
	tri.rotate(tri.findFirstKnownAngleIndex())
	ref := posB // position of the reference side, opposite to the angle to solve
	if !tri.hasSide(posB) {
		ref = posC
	}
	logf(log, LevelTrace, "solving SSA case from side and angle %s", Vertex(tri.abs(ref)))
	r, a, angleA := tri.side(ref), tri.side(posA), tri.angle(posA)
	h := ssaHeight(r, angleA)
	switch {
	case trigon.IsLess(a, h):
		logf(log, LevelWarn, "data describes no triangle (side a < h), a = %g, h = %g", a, h)
		return false, false
	case trigon.IsEqual(a, h):
		log.Log(LevelTrace, "SSA degenerate case, a ≈ h, solving for a right angle")
		tri.setAngle(ref, math.Pi/2)
		return true, false
	case trigon.IsLess(h, a) && trigon.IsLess(a, r):
		ambiguous = true
		if choice == NoSolution {
			log.Log(LevelWarn, "ambiguous SSA case with two possible solutions, "+
				"provide more data or select a solution; using the first one")
		} else {
			logf(log, LevelTrace, "ambiguous SSA case, using the %s solution", choice)
		}
	}
	x := math.Asin(trigon.Clamp(r*math.Sin(angleA)/a, -1, 1))
	if math.IsNaN(x) {
		logf(log, LevelWarn, "failed to solve SSA case, resulting angle is NaN; triangle is %s",
			tri.t.toDegrees())
		return false, ambiguous
	}
	if ambiguous && choice == SecondSolution {
		log.Log(LevelTrace, "solving for the second solution of the ambiguous SSA case")
		x = math.Pi - x
	}
	tri.setAngle(ref, x)
	return true, ambiguous
}
