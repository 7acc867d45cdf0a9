package triangle_test

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trigon/internal/trigen"
	"github.com/npillmayer/trigon/triangle"
	"github.com/stretchr/testify/assert"
)

func assertSameMetrics(t *testing.T, want, got triangle.Triangle, msg string) bool {
	t.Helper()
	ok := true
	for v := triangle.A; v <= triangle.C; v++ {
		ws, _ := want.Side(v)
		gs, _ := got.Side(v)
		ok = assert.InDelta(t, ws, gs, 1e-6*math.Max(1, ws), "side %s of %s", v, msg) && ok
		wa, _ := want.Angle(v)
		ga, _ := got.Angle(v)
		ok = assert.InDelta(t, wa, ga, 1e-6*math.Max(1, wa), "angle %s of %s", v, msg) && ok
	}
	return ok
}

func solveAll(t *testing.T, level trigen.Difficulty) {
	refs := trigen.New(trigen.DefaultSeed).All(50)
	calc := triangle.Calculator{Sink: triangle.Discard}
	n := 0
	for _, ref := range refs {
		for _, p := range trigen.Problems(ref, level) {
			result := calc.Finalize(p.Given, p.Choice)
			if !assert.Equal(t, triangle.Success, result.Code, p.String()) {
				continue
			}
			if !trigen.Matches(ref.Triangle, result.Triangle, 1e-6) {
				t.Errorf("%s: solved as %s", p, result.Triangle)
				assertSameMetrics(t, ref.Triangle, result.Triangle, p.String())
			}
			n++
		}
	}
	t.Logf("solved %d %s problems", n, level)
}

func TestBasicProblems(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	solveAll(t, trigen.Basic)
}

func TestAdvancedProblems(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	solveAll(t, trigen.Advanced)
}

func TestHardEdgeProblems(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	solveAll(t, trigen.HardEdge)
}

func TestAmbiguousProblemsWithoutChoice(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := 0
	for _, ref := range trigen.New(trigen.DefaultSeed).Generate(trigen.Scalene, 20) {
		for _, p := range trigen.Problems(ref, trigen.HardEdge) {
			if !p.Ambiguous {
				continue
			}
			n++
			result := triangle.Finalize(p.Given, triangle.NoSolution)
			assert.Equal(t, triangle.TriangleAmbiguous, result.Code, p.String())
			first := triangle.Finalize(p.Given, triangle.FirstSolution)
			assertSameMetrics(t, first.Triangle, result.Triangle, p.String())
		}
	}
	assert.Greater(t, n, 0)
}

// Solutions must describe the reference shape, not just its numbers.
func TestSolutionsAreCongruent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, ref := range trigen.New(trigen.DefaultSeed).All(10) {
		for _, p := range trigen.Problems(ref, trigen.Basic) {
			result := triangle.Finalize(p.Given, p.Choice)
			ok, err := trigen.Congruent(ref.Triangle, result.Triangle, 1e-6)
			if assert.NoError(t, err, p.String()) {
				assert.True(t, ok, p.String())
			}
		}
	}
}

func TestRemovingOneMetricIsRecovered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, ref := range trigen.New(trigen.DefaultSeed).All(25) {
		for bit := uint(0); bit < 6; bit++ {
			given := trigen.Restrict(ref.Triangle, uint8(63&^(1<<bit)))
			result := triangle.Finalize(given, triangle.NoSolution)
			assert.Equal(t, triangle.Success, result.Code, "%s without metric #%d", ref, bit)
			assert.True(t, trigen.Matches(ref.Triangle, result.Triangle, 1e-6),
				"%s without metric #%d: %s", ref, bit, result.Triangle)
		}
	}
}
