package triangle

import (
	"fmt"
	"strings"

	"github.com/npillmayer/trigon"
)

// Vertex names a corner of a triangle. Side X is opposite to angle X.
type Vertex int

// The three vertices of a triangle.
const (
	A Vertex = iota
	B
	C
)

func (v Vertex) String() string {
	switch v {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	}
	return fmt.Sprintf("Vertex(%d)", int(v))
}

// Slots 0..2 hold sides a, b, c; slots 3..5 hold angles A, B, C.
const angleSlot = 3

// Triangle holds the six metrics of a triangle, each of which may be
// unknown. The zero value is a triangle with nothing known.
//
// Triangle is a value type: all modifiers return a new triangle.
type Triangle struct {
	m       [6]float64
	present uint8 // bit i set => m[i] holds a value
}

// Null creates a triangle with no metric known, to be extended by
// subsequent builder calls.
func Null() Triangle {
	return Triangle{}
}

// Full creates a triangle with all six metrics set. Angles are in degrees.
func Full(a, b, c, angleA, angleB, angleC float64) Triangle {
	return Null().WithSide(A, a).WithSide(B, b).WithSide(C, c).
		WithAngle(A, angleA).WithAngle(B, angleB).WithAngle(C, angleC)
}

func slotOf(v Vertex) int {
	if v < A || v > C {
		panic(fmt.Sprintf("illegal vertex %d", int(v)))
	}
	return int(v)
}

func (t *Triangle) get(slot int) (float64, bool) {
	return t.m[slot], t.present&(1<<slot) != 0
}

func (t *Triangle) set(slot int, value float64) {
	t.m[slot] = value
	t.present |= 1 << slot
}

func (t *Triangle) unset(slot int) {
	t.m[slot] = 0
	t.present &^= 1 << slot
}

// WithSide returns a copy of t with the length of side v set.
// Part of builder functionality.
func (t Triangle) WithSide(v Vertex, length float64) Triangle {
	t.set(slotOf(v), length)
	return t
}

// WithAngle returns a copy of t with angle v set, in degrees.
// Part of builder functionality.
func (t Triangle) WithAngle(v Vertex, degrees float64) Triangle {
	t.set(angleSlot+slotOf(v), degrees)
	return t
}

// WithoutSide returns a copy of t with side v unknown.
func (t Triangle) WithoutSide(v Vertex) Triangle {
	t.unset(slotOf(v))
	return t
}

// WithoutAngle returns a copy of t with angle v unknown.
func (t Triangle) WithoutAngle(v Vertex) Triangle {
	t.unset(angleSlot + slotOf(v))
	return t
}

// Side returns the length of side v and a flag telling if it is present.
// A present side may still be unusable, see HasSide.
func (t Triangle) Side(v Vertex) (float64, bool) {
	return t.get(slotOf(v))
}

// Angle returns angle v in degrees and a flag telling if it is present.
func (t Triangle) Angle(v Vertex) (float64, bool) {
	return t.get(angleSlot + slotOf(v))
}

// HasSide is a predicate: is side v known? Sides are known only if
// present and of positive length.
func (t Triangle) HasSide(v Vertex) bool {
	return t.knownSide(slotOf(v))
}

// HasAngle is a predicate: is angle v known?
func (t Triangle) HasAngle(v Vertex) bool {
	_, ok := t.get(angleSlot + slotOf(v))
	return ok
}

func (t *Triangle) knownSide(slot int) bool {
	s, ok := t.get(slot)
	return ok && trigon.IsGreater(s, 0)
}

// KnownSides counts the known sides of t.
func (t Triangle) KnownSides() int {
	n := 0
	for v := A; v <= C; v++ {
		if t.HasSide(v) {
			n++
		}
	}
	return n
}

// KnownAngles counts the known angles of t.
func (t Triangle) KnownAngles() int {
	n := 0
	for v := A; v <= C; v++ {
		if t.HasAngle(v) {
			n++
		}
	}
	return n
}

// Relabeled returns t with its vertex names shifted cyclically by k:
// the metrics of vertex A of t become those of vertex A+k of the result.
// The shape of the triangle is unchanged.
func (t Triangle) Relabeled(k int) Triangle {
	var r Triangle
	k = normalizeRotation(k)
	for i := 0; i < 3; i++ {
		j := (i + k) % 3
		if s, ok := t.get(i); ok {
			r.set(j, s)
		}
		if a, ok := t.get(angleSlot + i); ok {
			r.set(angleSlot+j, a)
		}
	}
	return r
}

// String returns a triangle as a (debugging) string. Unknown metrics are
// printed as '?'.
//
// Example:
//
//	a=5 b=3 c=4 A=90° B=? C=?
func (t Triangle) String() string {
	var sb strings.Builder
	for i, name := range []string{"a", "b", "c", "A", "B", "C"} {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		if x, ok := t.get(i); ok {
			sb.WriteString(fmt.Sprintf("%g", x))
			if i >= angleSlot {
				sb.WriteString("°")
			}
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// === Angle units ===========================================================

// Convert all present angles with function conv.
func (t Triangle) convertAngles(conv func(float64) float64) Triangle {
	for i := angleSlot; i < angleSlot+3; i++ {
		if x, ok := t.get(i); ok {
			t.set(i, conv(x))
		}
	}
	return t
}

func (t Triangle) toRadians() Triangle {
	return t.convertAngles(trigon.Deg2Rad)
}

func (t Triangle) toDegrees() Triangle {
	return t.convertAngles(trigon.Rad2Deg)
}
