/*
Package triangle solves triangles from a partial description of their
six metrics: three side lengths and three angles.

Clients build a partial triangle and hand it to Finalize:

	t := triangle.Null().WithSide(triangle.B, 3).WithSide(triangle.C, 4).WithAngle(triangle.A, 90)
	result := triangle.Finalize(t, triangle.NoSolution)
	// result.Code == triangle.Success, result.Case == triangle.CaseSAS
	// result.Triangle.Side(triangle.A) == 5

Side X is always opposite to angle X. Angles are exchanged in degrees; all
internal computation is done in radians.

# Solving Strategy

Finalize counts the known sides and angles and classifies the input as one
of the classical cases SSS, SAS, SSA or ASA/AAS. Every solving step is
written for a fixed configuration, e.g. "the known angle is at A". A
rotating view onto the triangle brings the relevant vertex into position A
before the step runs, so no step needs to be written for more than one
labelling of the vertices.

# The Ambiguous Case

Two sides and a non-included angle (SSA) may describe two different
triangles. Callers select one of them with an AmbiguousCaseSolution. With
NoSolution the acute solution is returned, flagged with result code
TriangleAmbiguous.

# Logging

The solver reports observations (case detected, ambiguity, degenerate or
impossible configurations) to a Sink. By default this is the tracer with key
'trigon'. Correctness never depends on a sink being present.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package triangle
