package triangle

import "fmt"

// Calculator finalizes triangles. The zero value is ready to use and
// reports to the package tracer. Calculators hold no state between calls
// and may be used concurrently, as long as their sink allows it.
type Calculator struct {
	Sink Sink // receives observations; nil selects the 'trigon' tracer
}

func (calc *Calculator) sink() Sink {
	if calc == nil || calc.Sink == nil {
		return traceSink{}
	}
	return calc.Sink
}

// Finalize calculates the missing sides and angles of triangle t, using a
// default Calculator. See Calculator.Finalize.
func Finalize(t Triangle, choice AmbiguousCaseSolution) Result {
	var calc Calculator
	return calc.Finalize(t, choice)
}

// Classify determines the solving case for a triangle from its known
// metrics. Triangles with fewer than three known metrics or without any
// known side are CaseUndetermined.
func Classify(t Triangle) Case {
	tri := newView(&t)
	sides, angles := tri.knownSideCount(), tri.knownAngleCount()
	switch {
	case sides+angles < 3 || sides == 0:
		return CaseUndetermined
	case sides == 3:
		return CaseSSS
	case sides == 2 && angles == 1:
		tri.rotate(tri.findFirstKnownAngleIndex())
		if tri.hasSide(posB) && tri.hasSide(posC) {
			return CaseSAS // known angle is enclosed by the known sides
		}
		return CaseSSA
	case angles >= 2 && sides < 3:
		return CaseASA
	}
	panic(fmt.Sprintf("impossible combination of %d known sides and %d known angles", sides, angles))
}

// Finalize calculates the missing sides and angles of triangle t. Angles
// of t and of the resulting triangle are in degrees. t is not modified.
//
// If t holds an ambiguous SSA configuration, choice selects which of the
// two triangles to return. With NoSolution, the first one is returned and
// the result is flagged as TriangleAmbiguous.
//
// If t does not hold enough data, it is returned unchanged with result
// code InsufficientData. If t describes no triangle, the result code is
// InvalidData and the triangle may be partially solved.
func (calc *Calculator) Finalize(t Triangle, choice AmbiguousCaseSolution) Result {
	log := calc.sink()
	logf(log, LevelInfo, "got triangle: %s", t)
	result := Result{Triangle: t, Code: Success, Case: Classify(t)}
	if result.Case == CaseUndetermined {
		if t.KnownSides() == 0 {
			log.Log(LevelWarn, "no side known, cannot finalize the triangle")
		} else {
			log.Log(LevelWarn, "not enough information to finalize the triangle")
		}
		result.Code = InsufficientData
		return result
	}
	work := t.toRadians() // private copy, radians
	tri := newView(&work)
	ok, ambiguous := true, false
	switch result.Case {
	case CaseSSS:
		log.Log(LevelTrace, "SSS case detected")
		switch tri.knownAngleCount() {
		case 3:
			log.Log(LevelInfo, "triangle is already complete")
			return result
		case 2:
			ok = solveAngleSum(tri, log)
		default:
			ok = solveAnglesWithSides(tri, log)
		}
	case CaseSAS:
		log.Log(LevelTrace, "SAS case detected")
		tri.rotate(tri.findFirstKnownAngleIndex())
		solveSideWithAngleCos(tri, log)
		ok = solveAnglesWithSides(tri, log)
	case CaseSSA:
		log.Log(LevelTrace, "SSA case detected")
		tri.rotate(tri.findFirstKnownAngleIndex())
		if ok, ambiguous = resolveSSA(tri, choice, log); ok {
			if ok = solveAngleSum(tri, log); ok {
				tri.rotate(tri.findFirstKnownSideIndex())
				solveSides(tri, log)
			}
		}
	case CaseASA:
		log.Log(LevelTrace, "ASA/AAS case detected")
		if tri.knownAngleCount() == 2 {
			ok = solveAngleSum(tri, log)
		} else {
			ok = checkAngleSum(tri, log)
		}
		if ok {
			tri.rotate(tri.findFirstKnownSideIndex())
			solveSides(tri, log)
		}
	default:
		panic(fmt.Sprintf("no solver for case %s", result.Case))
	}
	result.Triangle = work.toDegrees()
	switch {
	case !ok || !tri.isSolved():
		logf(log, LevelWarn, "data describes no valid triangle: %s", result.Triangle)
		result.Code = InvalidData
	case ambiguous && choice == NoSolution:
		result.Code = TriangleAmbiguous
	}
	logf(log, LevelInfo, "finalized triangle (%s): %s", result.Code, result.Triangle)
	return result
}
