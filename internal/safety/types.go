package safety

// Verdict is the outcome of one safety check. Never persisted.
type Verdict struct {
	Allowed bool
	Reason  string
}

func deny(reason string) Verdict  { return Verdict{Allowed: false, Reason: reason} }
func allow(reason string) Verdict { return Verdict{Allowed: true, Reason: reason} }
