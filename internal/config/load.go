package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/learnhub/internal/platform/envutil"
)

const (
	EngineOffline = "offline"
	EngineMock    = "mock"
	EngineGenAI   = "genai"
	EngineOAIHTTP = "oai_http"

	defaultGeminiModel = "gemini-2.5-flash"
)

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		d.Duration = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		if strings.TrimSpace(u) == "" {
			d.Duration = 0
			return nil
		}
		dd, err := time.ParseDuration(u)
		if err != nil {
			return err
		}
		d.Duration = dd
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("duration must be a JSON string like \"5s\" or an int nanoseconds: %w", err)
	}
	d.Duration = time.Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
			MaxRequestBytes:   1 << 20,
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
			CoursePath:    "/course",
			SessionCookie: "learnhub_session",
		},
		Catalog: CatalogConfig{Driver: "memory"},
		Session: SessionConfig{
			Store:         "memory",
			TTL:           Duration{Duration: 2 * time.Hour},
			SweepInterval: Duration{Duration: time.Minute},
		},
		Tutor: TutorConfig{TypingDelay: Duration{Duration: 1500 * time.Millisecond}},
		Assistant: AssistantConfig{
			Timeout: Duration{Duration: 30 * time.Second},
			Model:   "offline",
		},
		Models: []ModelConfig{
			{ID: "offline", Engine: EngineConfig{Type: EngineOffline}},
			{ID: "mock", Engine: EngineConfig{Type: EngineMock}},
		},
		OTel: OTelConfig{ServiceName: "learnhub"},
	}
}

// Load builds the configuration: defaults, then the JSON file at
// LEARNHUB_CONFIG_PATH (or ./config/config.json when present), then
// environment overrides. A .env file in the working directory is loaded first
// when it exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("LEARNHUB_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.json")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		// Models are replaced wholesale, never merged element-wise into the defaults.
		defaults := cfg.Models
		cfg.Models = nil
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
		if cfg.Models == nil {
			cfg.Models = defaults
		}
	}

	applyEnv(cfg)
	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)
	if port := envutil.String("PORT", ""); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.HTTP.Addr = envutil.String("LEARNHUB_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.CoursePath = envutil.String("LEARNHUB_COURSE_PATH", cfg.HTTP.CoursePath)
	cfg.HTTP.SecureCookie = envutil.Bool("LEARNHUB_SECURE_COOKIE", cfg.HTTP.SecureCookie)
	if v := envutil.String("LEARNHUB_CORS_ORIGINS", ""); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}

	cfg.Catalog.Driver = envutil.String("LEARNHUB_CATALOG_DRIVER", cfg.Catalog.Driver)
	cfg.Catalog.DSN = envutil.String("LEARNHUB_CATALOG_DSN", cfg.Catalog.DSN)
	cfg.Catalog.SeedPath = envutil.String("LEARNHUB_CATALOG_SEED", cfg.Catalog.SeedPath)

	cfg.Session.Store = envutil.String("LEARNHUB_SESSION_STORE", cfg.Session.Store)
	cfg.Session.TTL.Duration = envutil.Duration("LEARNHUB_SESSION_TTL", cfg.Session.TTL.Duration)
	cfg.Session.RedisAddr = envutil.String("REDIS_ADDR", cfg.Session.RedisAddr)
	cfg.Session.RedisPassword = envutil.String("REDIS_PASSWORD", cfg.Session.RedisPassword)
	cfg.Session.RedisDB = envutil.Int("REDIS_DB", cfg.Session.RedisDB)

	cfg.Tutor.TypingDelay.Duration = envutil.Duration("LEARNHUB_TUTOR_DELAY", cfg.Tutor.TypingDelay.Duration)

	cfg.Assistant.Endpoint = envutil.String("LEARNHUB_ASSISTANT_ENDPOINT", cfg.Assistant.Endpoint)
	cfg.Assistant.Timeout.Duration = envutil.Duration("LEARNHUB_ASSISTANT_TIMEOUT", cfg.Assistant.Timeout.Duration)

	// A Gemini key alone is enough to put a real model behind the assistant.
	if key := envutil.String("GEMINI_API_KEY", ""); key != "" {
		found := false
		for i := range cfg.Models {
			if strings.EqualFold(cfg.Models[i].Engine.Type, EngineGenAI) {
				found = true
				if cfg.Models[i].Engine.APIKey == "" {
					cfg.Models[i].Engine.APIKey = key
				}
			}
		}
		if !found {
			cfg.Models = append(cfg.Models, ModelConfig{
				ID:            "gemini",
				UpstreamModel: envutil.String("GEMINI_MODEL", defaultGeminiModel),
				Engine:        EngineConfig{Type: EngineGenAI, APIKey: key},
			})
			cfg.Assistant.Model = "gemini"
		}
	}
	cfg.Assistant.Model = envutil.String("LEARNHUB_ASSISTANT_MODEL", cfg.Assistant.Model)
	cfg.OTel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.OTel.ServiceName)
}

func normalize(cfg *Config) error {
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.MaxRequestBytes <= 0 {
		cfg.HTTP.MaxRequestBytes = 1 << 20
	}
	if cfg.HTTP.CoursePath = strings.TrimSpace(cfg.HTTP.CoursePath); cfg.HTTP.CoursePath == "" {
		cfg.HTTP.CoursePath = "/course"
	}
	if strings.TrimSpace(cfg.HTTP.SessionCookie) == "" {
		cfg.HTTP.SessionCookie = "learnhub_session"
	}

	cfg.Catalog.Driver = strings.ToLower(strings.TrimSpace(cfg.Catalog.Driver))
	switch cfg.Catalog.Driver {
	case "", "memory":
		cfg.Catalog.Driver = "memory"
	case "postgres":
		if strings.TrimSpace(cfg.Catalog.DSN) == "" {
			return errors.New("catalog.driver=postgres requires catalog.dsn")
		}
	case "sqlite":
	default:
		return fmt.Errorf("invalid catalog.driver=%q", cfg.Catalog.Driver)
	}

	cfg.Session.Store = strings.ToLower(strings.TrimSpace(cfg.Session.Store))
	switch cfg.Session.Store {
	case "", "memory":
		cfg.Session.Store = "memory"
	case "redis":
		if strings.TrimSpace(cfg.Session.RedisAddr) == "" {
			return errors.New("session.store=redis requires session.redis_addr")
		}
	default:
		return fmt.Errorf("invalid session.store=%q", cfg.Session.Store)
	}
	if cfg.Session.TTL.Duration < 0 {
		return errors.New("session.ttl must not be negative")
	}

	if cfg.Tutor.TypingDelay.Duration < 0 {
		return errors.New("tutor.typing_delay must not be negative")
	}

	if strings.TrimSpace(cfg.Assistant.Endpoint) == "" {
		cfg.Assistant.Endpoint = "http://" + loopbackHost(cfg.HTTP.Addr) + "/api/gemini-chat"
	}

	if len(cfg.Models) == 0 {
		return errors.New("config must define at least one model")
	}
	seen := map[string]bool{}
	for i := range cfg.Models {
		m := &cfg.Models[i]
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" {
			return errors.New("model id is required")
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate model id: %s", m.ID)
		}
		seen[m.ID] = true
		if strings.TrimSpace(m.UpstreamModel) == "" {
			m.UpstreamModel = m.ID
		}

		m.Engine.Type = strings.ToLower(strings.TrimSpace(m.Engine.Type))
		m.Engine.BaseURL = strings.TrimRight(strings.TrimSpace(m.Engine.BaseURL), "/")
		switch m.Engine.Type {
		case EngineOffline, EngineMock:
		case EngineGenAI:
			if strings.TrimSpace(m.Engine.APIKey) == "" {
				return fmt.Errorf("model %q (genai) missing engine.api_key", m.ID)
			}
			if m.UpstreamModel == m.ID && m.ID == "gemini" {
				m.UpstreamModel = defaultGeminiModel
			}
		case "openai_http", EngineOAIHTTP:
			m.Engine.Type = EngineOAIHTTP
			if m.Engine.BaseURL == "" {
				return fmt.Errorf("model %q (oai_http) missing engine.base_url", m.ID)
			}
			if strings.TrimSpace(m.Engine.ChatCompletionsPath) == "" {
				m.Engine.ChatCompletionsPath = "/v1/chat/completions"
			}
			if m.Engine.Timeout.Duration <= 0 {
				m.Engine.Timeout = Duration{Duration: 60 * time.Second}
			}
		case "":
			return fmt.Errorf("model %q missing engine.type", m.ID)
		default:
			return fmt.Errorf("model %q has unsupported engine.type=%q", m.ID, m.Engine.Type)
		}
	}
	if cfg.Assistant.Model = strings.TrimSpace(cfg.Assistant.Model); cfg.Assistant.Model == "" {
		cfg.Assistant.Model = cfg.Models[0].ID
	}
	if !seen[cfg.Assistant.Model] {
		return fmt.Errorf("assistant.model %q is not a configured model", cfg.Assistant.Model)
	}
	return nil
}

// loopbackHost turns a listen address into something dialable from this process.
func loopbackHost(addr string) string {
	addr = strings.TrimSpace(addr)
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	if strings.HasPrefix(addr, "0.0.0.0:") {
		return "127.0.0.1" + strings.TrimPrefix(addr, "0.0.0.0")
	}
	return addr
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
