package permission

import "context"

// PolicyConsenter answers every consent request with a fixed decision.
// Used when no interactive surface is wired, e.g. headless deployments
// with permissions.auto_grant set.
type PolicyConsenter struct {
	GrantAll bool
}

func (p PolicyConsenter) Consent(ctx context.Context, target string) (bool, error) {
	return p.GrantAll, nil
}
