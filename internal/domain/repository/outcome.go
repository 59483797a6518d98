// Package repository defines the interfaces for the persistence layer.
package repository

// Outcome is the typed result of a guarded mutation. Expected conflicts are outcomes, not errors.
type Outcome int

const (
	// OutcomeApplied means the mutation took effect.
	OutcomeApplied Outcome = iota + 1
	// OutcomeDuplicate means a uniqueness constraint rejected the mutation.
	OutcomeDuplicate
	// OutcomeNotFound means the target row does not exist.
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
