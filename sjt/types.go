package sjt

// Mode selects whether the swap sequence closes back on the identity.
type Mode int

const (
	// ModeCyclic emits n! swaps and returns to the starting permutation.
	ModeCyclic Mode = iota

	// ModePlain emits n!−1 swaps and stops on the last new permutation.
	ModePlain
)

// String returns the lower-case name of m.
func (m Mode) String() string {
	switch m {
	case ModeCyclic:
		return "cyclic"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}
