package llm

import "errors"

var (
	ErrNoLocalProvider   = errors.New("no local provider configured")
	ErrNoRemoteProviders = errors.New("no remote providers configured")
	ErrAllTiersFailed    = errors.New("all provider tiers failed")
)
