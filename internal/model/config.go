package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	Rules       RulesConfig       `yaml:"rules"`
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// TelegramConfig configures the bot surface
type TelegramConfig struct {
	Token       string        `yaml:"token,omitempty"` // Prefer TELEGRAM_BOT_TOKEN env var
	Timeout     time.Duration `yaml:"timeout"`         // HTTP client timeout for API calls
	PollTimeout int           `yaml:"poll_timeout"`    // Long-poll timeout in seconds
	HTTPProxy   string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy  string        `yaml:"https_proxy,omitempty"`
	SOCKS5Proxy string        `yaml:"socks5_proxy,omitempty"` // host:port, for restricted networks
	Debug       bool          `yaml:"debug"`
}

// RulesConfig configures the rule table
type RulesConfig struct {
	File string `yaml:"file,omitempty"` // Optional YAML file with extra rules, appended after builtins
}

// LLMConfig configures optional tutor tip generation
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty"` // openai, anthropic, ollama, "" = disabled
	Model     string `yaml:"model,omitempty"`
	APIKey    string `yaml:"api_key,omitempty"` // Prefer env vars
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// CacheConfig configures tip response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir,omitempty"` // Disk layer directory
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateLimitConfig configures per-chat throttling
type RateLimitConfig struct {
	MessagesPerSecond float64 `yaml:"messages_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"` // Trailing summary line on analysis replies
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Timeout:     30 * time.Second,
			PollTimeout: 30,
		},
		Rules: RulesConfig{},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 300,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			MessagesPerSecond: 1,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
