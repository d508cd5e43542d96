package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `json:"addr"`
	ReadHeaderTimeout Duration `json:"read_header_timeout"`
	IdleTimeout       Duration `json:"idle_timeout"`
	ShutdownTimeout   Duration `json:"shutdown_timeout"`
	MaxRequestBytes   int64    `json:"max_request_bytes"`

	// CORSOrigins are the browser origins allowed to call the JSON API.
	CORSOrigins []string `json:"cors_origins,omitempty"`

	// CoursePath is where course detail links point; the title travels in ?course=.
	CoursePath string `json:"course_path,omitempty"`

	SessionCookie string `json:"session_cookie,omitempty"`
	SecureCookie  bool   `json:"secure_cookie,omitempty"`
}

type CatalogConfig struct {
	// Driver is "memory", "postgres" or "sqlite".
	Driver string `json:"driver"`
	DSN    string `json:"dsn,omitempty"`

	// SeedPath points at a YAML catalog; empty uses the built-in one.
	SeedPath string `json:"seed_path,omitempty"`
}

type SessionConfig struct {
	// Store is "memory" or "redis".
	Store         string   `json:"store"`
	TTL           Duration `json:"ttl"`
	SweepInterval Duration `json:"sweep_interval,omitempty"`

	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`
	RedisPrefix   string `json:"redis_prefix,omitempty"`
}

type TutorConfig struct {
	// TypingDelay is how long the typing placeholder shows before a canned reply.
	TypingDelay Duration `json:"typing_delay"`
}

type AssistantConfig struct {
	// Endpoint is the absolute URL the assistant widget posts {message} to.
	// Empty derives http://127.0.0.1<addr>/api/gemini-chat from http.addr.
	Endpoint string `json:"endpoint,omitempty"`

	// Timeout bounds one assistant request; zero leaves it to the caller's context.
	Timeout Duration `json:"timeout,omitempty"`

	// Model selects which configured model answers /api/gemini-chat.
	Model string `json:"model,omitempty"`
}

type EngineConfig struct {
	// Type is one of "offline", "mock", "genai", "oai_http".
	Type string `json:"type"`

	// BaseURL is the upstream base URL for "oai_http".
	BaseURL string `json:"base_url,omitempty"`

	// APIKey is sent as a bearer token (oai_http) or used as the Gemini key (genai).
	APIKey string `json:"api_key,omitempty"`

	ChatCompletionsPath string `json:"chat_completions_path,omitempty"`

	Timeout Duration `json:"timeout,omitempty"`

	// SystemPrompt is prepended to every conversation when set.
	SystemPrompt string `json:"system_prompt,omitempty"`
}

type ModelConfig struct {
	ID string `json:"id"`

	// UpstreamModel overrides the model name sent to the engine. Defaults to ID.
	UpstreamModel string `json:"upstream_model,omitempty"`

	Engine EngineConfig `json:"engine"`
}

type OTelConfig struct {
	ServiceName string `json:"service_name,omitempty"`
	Version     string `json:"version,omitempty"`
}

type Config struct {
	Env       string          `json:"env"`
	HTTP      HTTPConfig      `json:"http"`
	Catalog   CatalogConfig   `json:"catalog"`
	Session   SessionConfig   `json:"session"`
	Tutor     TutorConfig     `json:"tutor"`
	Assistant AssistantConfig `json:"assistant"`
	Models    []ModelConfig   `json:"models"`
	OTel      OTelConfig      `json:"otel"`
}
