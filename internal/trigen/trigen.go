// Package trigen generates reference triangles for testing the solver.
//
// Triangles are constructed from vertices in the plane, moved around by a
// random rigid motion, and then measured: side lengths are vertex distances
// and angles are taken from the phases of the edge vectors. None of this
// uses the law of sines or cosines, which makes the generated triangles an
// independent reference for the solver.
//
// Generation is deterministic for a given seed.
package trigen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trigon"
	"github.com/npillmayer/trigon/triangle"
	"gonum.org/v1/gonum/floats/scalar"
)

// tracer writes to trace with key 'trigon'
func tracer() tracing.Trace {
	return tracing.Select("trigon")
}

// DefaultSeed is the seed used by the test suites.
const DefaultSeed int64 = 42

var (
	// ErrDegenerate indicates vertices which do not span a triangle.
	ErrDegenerate = errors.New("vertices do not span a triangle")
	// ErrIncomplete indicates a triangle lacking metrics needed for a layout.
	ErrIncomplete = errors.New("triangle is missing sides or angles")
)

// Kind categorizes reference triangles.
type Kind int

// Kinds of reference triangles.
const (
	Right Kind = iota
	Equilateral
	Isosceles
	Scalene
)

func (k Kind) String() string {
	switch k {
	case Right:
		return "right"
	case Equilateral:
		return "equilateral"
	case Isosceles:
		return "isosceles"
	case Scalene:
		return "scalene"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Reference is a triangle measured from its vertices.
type Reference struct {
	Kind     Kind
	Vertices [3]trigon.Pair // vertex A, B, C
	Triangle triangle.Triangle
}

func (ref Reference) String() string {
	return fmt.Sprintf("%s %s", ref.Kind, ref.Triangle)
}

// Measure constructs a complete triangle from three vertices.
func Measure(pa, pb, pc trigon.Pair) (triangle.Triangle, error) {
	a, b, c := pb.Dist(pc), pa.Dist(pc), pa.Dist(pb)
	alpha, beta, gamma := pa.AngleAt(pb, pc), pb.AngleAt(pa, pc), pc.AngleAt(pa, pb)
	for _, x := range []float64{alpha, beta, gamma} {
		if math.IsNaN(x) || trigon.Is0(x) || trigon.IsEqual(x, math.Pi) {
			return triangle.Null(), fmt.Errorf("%w: %s, %s, %s", ErrDegenerate, pa, pb, pc)
		}
	}
	return triangle.Full(a, b, c, trigon.Rad2Deg(alpha), trigon.Rad2Deg(beta), trigon.Rad2Deg(gamma)), nil
}

// Generator produces reference triangles.
type Generator struct {
	rnd *rand.Rand
}

// New creates a generator for a seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

// Move vertices by a random rotation around the origin, followed by a
// random translation.
func (g *Generator) move(vertices [3]trigon.Pair) [3]trigon.Pair {
	theta := g.uniform(0, 2*math.Pi)
	shift := trigon.P(g.uniform(-50, 50), g.uniform(-50, 50))
	for i, v := range vertices {
		vertices[i] = v.Rotated(theta).Shifted(shift)
	}
	return vertices
}

func (g *Generator) reference(kind Kind, vertices [3]trigon.Pair) (Reference, error) {
	vertices = g.move(vertices)
	t, err := Measure(vertices[0], vertices[1], vertices[2])
	if err != nil {
		return Reference{}, err
	}
	return Reference{Kind: kind, Vertices: vertices, Triangle: t}, nil
}

// Generate creates n reference triangles of a kind.
func (g *Generator) Generate(kind Kind, n int) []Reference {
	refs := make([]Reference, 0, n)
	for attempts := 0; len(refs) < n && attempts < 100*n; attempts++ {
		var vertices [3]trigon.Pair
		scale := 1.1 + 0.37*float64(len(refs))
		switch kind {
		case Right: // right angle at C
			legs := [][2]float64{{3, 4}, {5, 12}, {8, 15}}[len(refs)%3]
			vertices = [3]trigon.Pair{trigon.P(0, legs[1]*scale), trigon.P(legs[0]*scale, 0), trigon.Origin}
		case Equilateral:
			s := 1.5 + 0.73*float64(len(refs))
			vertices = [3]trigon.Pair{trigon.Polar(s, math.Pi/3), trigon.P(s, 0), trigon.Origin}
		case Isosceles: // apex at A
			base := 2.0 + 0.5*float64(len(refs))
			height := g.uniform(0.5, 3) * base
			vertices = [3]trigon.Pair{trigon.P(base/2, height), trigon.P(base, 0), trigon.Origin}
		case Scalene:
			vertices = [3]trigon.Pair{
				trigon.P(g.uniform(-4, 4), g.uniform(2, 8)),
				trigon.P(g.uniform(2, 8), g.uniform(-1, 1)),
				trigon.Origin,
			}
			if !wellShaped(vertices) {
				continue
			}
		default:
			panic(fmt.Sprintf("unknown kind of triangle: %d", int(kind)))
		}
		ref, err := g.reference(kind, vertices)
		if err != nil {
			tracer().Debugf("skipping reference triangle: %v", err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

// All generates a mix of reference triangles: 20% right, 20% equilateral,
// 20% isosceles and 40% scalene triangles.
func (g *Generator) All(n int) []Reference {
	fifth := n / 5
	refs := g.Generate(Right, fifth)
	refs = append(refs, g.Generate(Equilateral, fifth)...)
	refs = append(refs, g.Generate(Isosceles, fifth)...)
	return append(refs, g.Generate(Scalene, n-3*fifth)...)
}

// Scalene triangles should have clearly distinct sides and no sliver angles.
func wellShaped(v [3]trigon.Pair) bool {
	sides := []float64{v[1].Dist(v[2]), v[0].Dist(v[2]), v[0].Dist(v[1])}
	for i := 0; i < 3; i++ {
		if math.Abs(sides[i]-sides[(i+1)%3]) < 0.1 {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		x := v[i].AngleAt(v[(i+1)%3], v[(i+2)%3])
		if math.IsNaN(x) || x < trigon.Deg2Rad(5) || x > trigon.Deg2Rad(170) {
			return false
		}
	}
	return true
}

// Layout places a triangle in the plane: vertex A at the origin, vertex B
// on the positive x-axis and vertex C above it. Congruent triangles with
// equal labelling have identical layouts.
func Layout(t triangle.Triangle) (polyclip.Contour, error) {
	b, okb := t.Side(triangle.B)
	c, okc := t.Side(triangle.C)
	alpha, oka := t.Angle(triangle.A)
	if !okb || !okc || !oka {
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, t)
	}
	pc := trigon.P(b, 0).Rotated(trigon.Deg2Rad(alpha))
	return polyclip.Contour{
		polyclip.Point{X: 0, Y: 0},
		polyclip.Point{X: c, Y: 0},
		polyclip.Point{X: pc.X(), Y: pc.Y()},
	}, nil
}

// Congruent checks if two triangles have the same layout within delta,
// comparing bounding boxes first and vertex positions second.
func Congruent(t1, t2 triangle.Triangle, delta float64) (bool, error) {
	l1, err := Layout(t1)
	if err != nil {
		return false, err
	}
	l2, err := Layout(t2)
	if err != nil {
		return false, err
	}
	bb1, bb2 := l1.BoundingBox(), l2.BoundingBox()
	if !near(bb1.Min, bb2.Min, delta) || !near(bb1.Max, bb2.Max, delta) {
		return false, nil
	}
	for i := range l1 {
		if !near(l1[i], l2[i], delta) {
			return false, nil
		}
	}
	return true, nil
}

func near(p, q polyclip.Point, delta float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, delta) && scalar.EqualWithinAbs(p.Y, q.Y, delta)
}

// Matches checks if all six metrics of two triangles are present in both or
// in neither, and agree within an absolute or relative tolerance.
func Matches(want, got triangle.Triangle, tol float64) bool {
	for v := triangle.A; v <= triangle.C; v++ {
		ws, okw := want.Side(v)
		gs, okg := got.Side(v)
		if okw != okg || okw && !scalar.EqualWithinAbsOrRel(ws, gs, tol, tol) {
			return false
		}
		wa, okw := want.Angle(v)
		ga, okg := got.Angle(v)
		if okw != okg || okw && !scalar.EqualWithinAbsOrRel(wa, ga, tol, tol) {
			return false
		}
	}
	return true
}
