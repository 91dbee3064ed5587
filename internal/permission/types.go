package permission

// Decision is the tri-state persisted outcome for one target.
type Decision string

const (
	DecisionAllow     Decision = "allow"
	DecisionDeny      Decision = "deny"
	DecisionUndecided Decision = "undecided"
)

// Record is one persisted permission entry. Keys are case-folded before
// lookup or storage so "Chrome" and "chrome" resolve to one entry.
type Record struct {
	Target   string   `json:"target"`
	Decision Decision `json:"decision"`
}

// store is the on-disk JSON shape.
type store struct {
	Permissions map[string]Decision `json:"permissions"`
}
