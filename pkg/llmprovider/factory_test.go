package llmprovider

import (
	"errors"
	"strings"
	"testing"

	"desktop-assistant/config"
)

func remoteConfig(providers ...config.ProviderConfig) *config.LLMConfig {
	return &config.LLMConfig{Remote: providers}
}

func TestInitializeRemoteProviders_NilConfig(t *testing.T) {
	if _, err := InitializeRemoteProviders(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestInitializeRemoteProviders_NoneEnabled(t *testing.T) {
	cfg := remoteConfig(
		config.ProviderConfig{Name: "groq", Enabled: false, Priority: 1, APIKey: "k"},
	)

	_, err := InitializeRemoteProviders(cfg)
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("err = %v, want ErrNoProvidersConfigured", err)
	}
}

func TestInitializeRemoteProviders_SortedByPriority(t *testing.T) {
	cfg := remoteConfig(
		config.ProviderConfig{Name: "groq", Enabled: true, Priority: 2, APIKey: "k1"},
		config.ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k2"},
	)

	providers, err := InitializeRemoteProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("got %d providers, want 2", len(providers))
	}
	if providers[0].Name() != "gemini" || providers[1].Name() != "groq" {
		t.Errorf("order = [%s %s], want [gemini groq]", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeRemoteProviders_DisabledFiltered(t *testing.T) {
	cfg := remoteConfig(
		config.ProviderConfig{Name: "groq", Enabled: false, Priority: 1, APIKey: "k1"},
		config.ProviderConfig{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k2"},
	)

	providers, err := InitializeRemoteProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Errorf("got %v, want only gemini", providers)
	}
}

func TestInitializeRemoteProviders_BrokenProviderSkipped(t *testing.T) {
	// Missing API key fails that provider's initialization without
	// failing the whole chain.
	cfg := remoteConfig(
		config.ProviderConfig{Name: "groq", Enabled: true, Priority: 1},
		config.ProviderConfig{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k"},
	)

	providers, err := InitializeRemoteProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Errorf("got %v, want only gemini", providers)
	}
}

func TestInitializeRemoteProviders_AllBroken(t *testing.T) {
	cfg := remoteConfig(
		config.ProviderConfig{Name: "watson", Enabled: true, Priority: 1, APIKey: "k"},
	)

	_, err := InitializeRemoteProviders(cfg)
	if err == nil {
		t.Fatal("expected error when no provider initializes")
	}
	if !strings.Contains(err.Error(), "no providers successfully initialized") {
		t.Errorf("err = %v, want an aggregate initialization failure", err)
	}
}
