package trigen

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trigon"
	"github.com/npillmayer/trigon/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureRightTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tri, err := Measure(trigon.P(0, 4), trigon.P(3, 0), trigon.Origin)
	require.NoError(t, err)
	a, _ := tri.Side(triangle.A)
	b, _ := tri.Side(triangle.B)
	c, _ := tri.Side(triangle.C)
	assert.InDelta(t, 3.0, a, 1e-12)
	assert.InDelta(t, 4.0, b, 1e-12)
	assert.InDelta(t, 5.0, c, 1e-12)
	gamma, _ := tri.Angle(triangle.C)
	assert.InDelta(t, 90.0, gamma, 1e-10)
}

func TestMeasureDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Measure(trigon.P(0, 0), trigon.P(1, 1), trigon.P(2, 2))
	assert.True(t, errors.Is(err, ErrDegenerate))
	_, err = Measure(trigon.P(1, 1), trigon.P(1, 1), trigon.P(2, 0))
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestGeneratorIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r1 := New(DefaultSeed).All(20)
	r2 := New(DefaultSeed).All(20)
	require.Len(t, r1, 20)
	assert.Equal(t, r1, r2)
}

func TestGeneratedTrianglesAreConsistent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, ref := range New(DefaultSeed).All(50) {
		tri := ref.Triangle
		require.Equal(t, 3, tri.KnownSides(), ref.String())
		require.Equal(t, 3, tri.KnownAngles(), ref.String())
		sum := 0.0
		for v := triangle.A; v <= triangle.C; v++ {
			x, _ := tri.Angle(v)
			sum += x
		}
		assert.InDelta(t, 180.0, sum, 1e-9, ref.String())
		a, _ := tri.Side(triangle.A)
		alpha, _ := tri.Angle(triangle.A)
		b, _ := tri.Side(triangle.B)
		beta, _ := tri.Angle(triangle.B)
		ratio := a / math.Sin(trigon.Deg2Rad(alpha))
		assert.InEpsilon(t, ratio, b/math.Sin(trigon.Deg2Rad(beta)), 1e-9, ref.String())
	}
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := New(7)
	for _, ref := range g.Generate(Equilateral, 3) {
		for v := triangle.A; v <= triangle.C; v++ {
			x, _ := ref.Triangle.Angle(v)
			assert.InDelta(t, 60.0, x, 1e-9)
		}
	}
	for _, ref := range g.Generate(Right, 3) {
		x, _ := ref.Triangle.Angle(triangle.C)
		assert.InDelta(t, 90.0, x, 1e-9)
	}
	for _, ref := range g.Generate(Isosceles, 3) {
		x, _ := ref.Triangle.Angle(triangle.B)
		y, _ := ref.Triangle.Angle(triangle.C)
		assert.InDelta(t, x, y, 1e-9)
	}
	assert.Len(t, g.Generate(Scalene, 5), 5)
	assert.Equal(t, "scalene", Scalene.String())
}

func TestProblemLevels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ref := New(DefaultSeed).Generate(Scalene, 1)[0]
	basic := Problems(ref, Basic)
	advanced := Problems(ref, Advanced)
	hard := Problems(ref, HardEdge)
	// SSS: 1, SAS: 3, ASA/AAS: 3·3
	assert.Len(t, basic, 13)
	// 2 sides and 1 angle: 9 combinations, 3 of them SAS
	assert.Len(t, hard, 6)
	// masks with 4, 5 or 6 metrics: 15+6+1
	assert.Len(t, advanced, 22)
	for _, p := range hard {
		assert.Equal(t, triangle.CaseSSA, triangle.Classify(p.Given), p.String())
	}
}

func TestSSAChoice(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// A=30, a=4, b=7: B is either 61.04° or 118.96°
	acute := triangle.Null().WithAngle(triangle.A, 30).WithSide(triangle.A, 4).WithSide(triangle.B, 7).
		WithAngle(triangle.B, 61.045).WithSide(triangle.C, 7.998).WithAngle(triangle.C, 88.955)
	given := Restrict(acute, 0b001011)
	amb, choice := ssaChoice(acute, given)
	assert.True(t, amb)
	assert.Equal(t, triangle.FirstSolution, choice)
	obtuse := acute.WithAngle(triangle.B, 118.955)
	amb, choice = ssaChoice(obtuse, given)
	assert.True(t, amb)
	assert.Equal(t, triangle.SecondSolution, choice)
}

func TestLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tri := triangle.Full(5, 3, 4, 90, 36.869897645844, 53.130102354156)
	contour, err := Layout(tri)
	require.NoError(t, err)
	require.Len(t, contour, 3)
	assert.InDelta(t, 4.0, contour[1].X, 1e-12)
	assert.InDelta(t, 0.0, contour[2].X, 1e-12)
	assert.InDelta(t, 3.0, contour[2].Y, 1e-12)
	bb := contour.BoundingBox()
	assert.InDelta(t, 4.0, bb.Max.X, 1e-12)
	assert.InDelta(t, 3.0, bb.Max.Y, 1e-12)
	//
	_, err = Layout(triangle.Null().WithSide(triangle.A, 3))
	assert.True(t, errors.Is(err, ErrIncomplete))
}

func TestCongruence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ref := New(DefaultSeed).Generate(Scalene, 1)[0]
	ok, err := Congruent(ref.Triangle, ref.Triangle, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
	other := ref.Triangle.Relabeled(1)
	ok, err = Congruent(ref.Triangle, other, 1e-6)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	tri := triangle.Full(5, 3, 4, 90, 36.869897645844, 53.130102354156)
	assert.True(t, Matches(tri, tri, 1e-9))
	assert.True(t, Matches(tri, tri.WithSide(triangle.A, 5+1e-8), 1e-6))
	assert.False(t, Matches(tri, tri.WithSide(triangle.A, 5.1), 1e-6))
	assert.False(t, Matches(tri, tri.WithoutAngle(triangle.B), 1e-6))
}
