package permission

import "context"

// Consenter decides an undecided permission request. Implementations may
// prompt a UI, speak a question, or apply a fixed policy; the manager only
// requires that the answer can be recorded.
type Consenter interface {
	Consent(ctx context.Context, target string) (bool, error)
}

// Manager gates capability targets behind persisted user consent.
type Manager interface {
	// CheckAndRequest resolves a target: blocked targets are always
	// denied, auto-approved targets always allowed, otherwise the
	// persisted record decides; an undecided record triggers the
	// consent step and persists its outcome before returning.
	CheckAndRequest(ctx context.Context, target string) bool

	// Grant persists an allow decision for the target.
	Grant(ctx context.Context, target string) error

	// Deny persists a deny decision for the target.
	Deny(ctx context.Context, target string) error

	// Revoke removes the persisted record, returning the target to the
	// undecided state.
	Revoke(ctx context.Context, target string) error

	// List returns all persisted records, sorted by target.
	List(ctx context.Context) []Record
}
