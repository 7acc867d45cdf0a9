package triangle

import "fmt"

// ResultCode tells the outcome of finalizing a triangle.
type ResultCode int

// Result codes of Finalize.
const (
	Success           ResultCode = iota // triangle is fully determined
	InsufficientData                    // not enough data to solve the triangle
	TriangleAmbiguous                   // SSA with two solutions, none selected by the caller
	InvalidData                         // data describes no triangle
)

func (code ResultCode) String() string {
	switch code {
	case Success:
		return "success"
	case InsufficientData:
		return "insufficient data"
	case TriangleAmbiguous:
		return "triangle ambiguous"
	case InvalidData:
		return "invalid data"
	}
	return fmt.Sprintf("ResultCode(%d)", int(code))
}

// AmbiguousCaseSolution selects one of the two triangles of an ambiguous
// SSA configuration.
type AmbiguousCaseSolution int

// NoSolution returns the first (acute) solution, but flags the result as
// TriangleAmbiguous. FirstSolution selects the triangle where the solved
// angle is acute, SecondSolution the one where it is obtuse.
const (
	NoSolution AmbiguousCaseSolution = iota
	FirstSolution
	SecondSolution
)

func (s AmbiguousCaseSolution) String() string {
	switch s {
	case NoSolution:
		return "none"
	case FirstSolution:
		return "first"
	case SecondSolution:
		return "second"
	}
	return fmt.Sprintf("AmbiguousCaseSolution(%d)", int(s))
}

// Case is the classical case of triangle solving, determined by which of
// the metrics are known.
type Case int

// Cases, see Classify.
const (
	CaseUndetermined Case = iota // too few metrics or no side known
	CaseSSS                      // three sides
	CaseSAS                      // two sides and the included angle
	CaseSSA                      // two sides and a non-included angle
	CaseASA                      // two angles and a side (ASA or AAS)
)

func (c Case) String() string {
	switch c {
	case CaseUndetermined:
		return "undetermined"
	case CaseSSS:
		return "SSS"
	case CaseSAS:
		return "SAS"
	case CaseSSA:
		return "SSA"
	case CaseASA:
		return "ASA/AAS"
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// Result pairs a (possibly partially) solved triangle with the outcome of
// solving it. Angles of the triangle are in degrees.
type Result struct {
	Triangle Triangle
	Code     ResultCode
	Case     Case
}
