package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Security   SecurityConfig

	// Assistant specifics
	LLM         LLMConfig
	Permissions PermissionsConfig
	Safety      SafetyConfig
	Speech      SpeechConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SecurityConfig guards the HTTP surface.
type SecurityConfig struct {
	AuthToken       string
	RateLimitPerMin int
}

// LLMConfig holds configuration for the provider routing layer.
type LLMConfig struct {
	// Mode is the global routing override: "local", "remote", or "auto".
	Mode string

	Local   LocalProviderConfig
	Remote  []ProviderConfig
	Routing RoutingConfig
}

// LocalProviderConfig configures the local model server (Ollama).
type LocalProviderConfig struct {
	BaseURL   string
	Model     string
	CodeModel string
	Timeout   string
}

// ProviderConfig holds configuration for a single remote LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// RoutingConfig tunes local-vs-remote selection.
type RoutingConfig struct {
	// RemoteTasks always route to the remote tier, LocalTasks to local.
	RemoteTasks []string
	LocalTasks  []string

	// LongPromptThreshold is the prompt size (chars) beyond which auto
	// mode prefers the remote tier for its larger context budget.
	LongPromptThreshold int

	ProbeURL     string
	ProbeTimeout string

	LocalTimeout  string
	RemoteTimeout string
}

// PermissionsConfig configures app-consent gating.
type PermissionsConfig struct {
	File         string
	AutoApproved []string
	Blocked      []string
	AutoGrant    bool
}

// SafetyConfig configures path and command safety checks.
type SafetyConfig struct {
	SafeFolders      []string
	ForbiddenFolders []string
}

// SpeechConfig configures spoken responses for local-device commands.
type SpeechConfig struct {
	Enabled bool
	Command string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Security
	cfg.Security.AuthToken = expandEnvVar(viper.GetString("security.auth_token"))
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	// LLM routing
	cfg.LLM.Mode = viper.GetString("llm.mode")
	cfg.LLM.Local.BaseURL = viper.GetString("llm.local.base_url")
	cfg.LLM.Local.Model = viper.GetString("llm.local.model")
	cfg.LLM.Local.CodeModel = viper.GetString("llm.local.code_model")
	cfg.LLM.Local.Timeout = viper.GetString("llm.local.timeout")
	cfg.LLM.Routing.RemoteTasks = viper.GetStringSlice("llm.routing.remote_tasks")
	cfg.LLM.Routing.LocalTasks = viper.GetStringSlice("llm.routing.local_tasks")
	cfg.LLM.Routing.LongPromptThreshold = viper.GetInt("llm.routing.long_prompt_threshold")
	cfg.LLM.Routing.ProbeURL = viper.GetString("llm.routing.probe_url")
	cfg.LLM.Routing.ProbeTimeout = viper.GetString("llm.routing.probe_timeout")
	cfg.LLM.Routing.LocalTimeout = viper.GetString("llm.routing.local_timeout")
	cfg.LLM.Routing.RemoteTimeout = viper.GetString("llm.routing.remote_timeout")

	// Remote provider list
	if viper.IsSet("llm.remote") {
		providersRaw := viper.Get("llm.remote")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Remote = append(cfg.LLM.Remote, provider)
				}
			}
		}
	}

	// Permissions
	cfg.Permissions.File = viper.GetString("permissions.file")
	cfg.Permissions.AutoApproved = viper.GetStringSlice("permissions.auto_approved")
	cfg.Permissions.Blocked = viper.GetStringSlice("permissions.blocked")
	cfg.Permissions.AutoGrant = viper.GetBool("permissions.auto_grant")

	// Safety
	cfg.Safety.SafeFolders = viper.GetStringSlice("safety.safe_folders")
	cfg.Safety.ForbiddenFolders = viper.GetStringSlice("safety.forbidden_folders")

	// Speech
	cfg.Speech.Enabled = viper.GetBool("speech.enabled")
	cfg.Speech.Command = viper.GetString("speech.command")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("security.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.mode", "auto")
	viper.SetDefault("llm.local.base_url", "http://localhost:11434")
	viper.SetDefault("llm.local.model", "llama3.2:3b")
	viper.SetDefault("llm.local.code_model", "codegemma:7b")
	viper.SetDefault("llm.local.timeout", "60s")
	viper.SetDefault("llm.routing.remote_tasks", []string{"complex_code", "long_document"})
	viper.SetDefault("llm.routing.local_tasks", []string{"intent_parsing", "quick_command", "simple_code"})
	viper.SetDefault("llm.routing.long_prompt_threshold", 2000)
	viper.SetDefault("llm.routing.probe_url", "https://www.google.com")
	viper.SetDefault("llm.routing.probe_timeout", "3s")
	viper.SetDefault("llm.routing.local_timeout", "60s")
	viper.SetDefault("llm.routing.remote_timeout", "30s")

	// Permissions / safety defaults
	viper.SetDefault("permissions.file", "data/permissions.json")
	viper.SetDefault("permissions.auto_grant", false)
	viper.SetDefault("speech.enabled", true)
}

// validateLLMConfig validates the routing mode and remote provider list.
// An empty remote list is valid: the router then always runs local-only.
func validateLLMConfig(cfg *LLMConfig) error {
	switch cfg.Mode {
	case "local", "remote", "auto":
	default:
		return fmt.Errorf("invalid llm.mode %q (want local, remote, or auto)", cfg.Mode)
	}

	priorityMap := make(map[int]bool)
	for i, provider := range cfg.Remote {
		if provider.Name == "" {
			return fmt.Errorf("remote provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
