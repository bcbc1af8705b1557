package conf

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration
type Config struct {
	// Twitter provider configuration
	Twitter TwitterConfig

	// OpenAI configuration (optional; composer falls back without it)
	OpenAI OpenAIConfig

	// Brand configuration
	Brand BrandConfig

	// Server configuration
	Server ServerConfig

	// History configuration
	History HistoryConfig

	// Prompts configuration (loaded from YAML)
	Prompts *PromptsConfig

	// Debug mode
	Debug bool
}

// TwitterConfig contains provider credentials and handshake settings
type TwitterConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	HandshakeTTL   time.Duration
}

// OpenAIConfig contains text-generation provider settings
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// BrandConfig identifies the brand the assistant works for
type BrandConfig struct {
	Handle string
	Niche  string
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port      int
	BaseURL   string
	UploadDir string
}

// HistoryConfig contains conversation history settings
type HistoryConfig struct {
	DBPath   string
	MaxAge   time.Duration
	MaxCount int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	port := 8080
	if val := os.Getenv("PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			port = parsed
		}
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + strconv.Itoa(port)
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	historyDBPath := os.Getenv("HISTORY_DB_PATH")
	if historyDBPath == "" {
		historyDBPath = "./data/history.db"
	}

	handshakeTTLMin := 10
	if val := os.Getenv("HANDSHAKE_TTL_MINUTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			handshakeTTLMin = parsed
		}
	}

	historyMaxHours := 72
	if val := os.Getenv("HISTORY_MAX_HOURS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			historyMaxHours = parsed
		}
	}

	historyMaxCount := 15
	if val := os.Getenv("HISTORY_MAX_COUNT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			historyMaxCount = parsed
		}
	}

	brandHandle := os.Getenv("BRAND_HANDLE")
	if brandHandle == "" {
		brandHandle = "your brand"
	}

	brandNiche := os.Getenv("BRAND_NICHE")
	if brandNiche == "" {
		brandNiche = "marketing"
	}

	// Load prompt templates from YAML
	promptsConfig, _ := LoadPromptsConfig(os.Getenv("PROMPTS_CONFIG_PATH"))

	return &Config{
		Twitter: TwitterConfig{
			ConsumerKey:    os.Getenv("TWITTER_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("TWITTER_CONSUMER_SECRET"),
			HandshakeTTL:   time.Duration(handshakeTTLMin) * time.Minute,
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  os.Getenv("OPENAI_MODEL"),
		},
		Brand: BrandConfig{
			Handle: brandHandle,
			Niche:  brandNiche,
		},
		Server: ServerConfig{
			Port:      port,
			BaseURL:   baseURL,
			UploadDir: uploadDir,
		},
		History: HistoryConfig{
			DBPath:   historyDBPath,
			MaxAge:   time.Duration(historyMaxHours) * time.Hour,
			MaxCount: historyMaxCount,
		},
		Prompts: promptsConfig,
		Debug:   os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Twitter.ConsumerKey == "" || c.Twitter.ConsumerSecret == "" {
		return &ConfigError{Field: "TWITTER_CONSUMER_KEY/TWITTER_CONSUMER_SECRET", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
