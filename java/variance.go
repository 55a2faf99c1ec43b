package java

// Variance is a use-site marker on a declared type parameter.
type Variance uint8

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Invariant:
		return ""
	case Covariant:
		return "out"
	case Contravariant:
		return "in"
	default:
		return "invalid"
	}
}

// VarianceOf parses the textual markers used in model descriptions.
// The empty string means invariant.
func VarianceOf(s string) (Variance, bool) {
	switch s {
	case "":
		return Invariant, true
	case "out":
		return Covariant, true
	case "in":
		return Contravariant, true
	default:
		return Invariant, false
	}
}
