package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable  = errors.New("empty environment variable")
	ErrInvalidCompletionProvider = errors.New("invalid completion provider")
)

// Completion providers
const (
	CompletionProviderOpenAI = "openai"
	CompletionProviderGemini = "gemini"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Services   ServicesConfig
	Telephony  TelephonyConfig
	Completion CompletionConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	RateLimit  RateLimitConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey       string
	GoogleAIAPIKey     string
	ResendAPIKey       string
	DefaultEmailSender string
	AgencyNotifyEmail  string
	WebAppURI          string
}

// TelephonyConfig holds the voice webhook settings. Every spoken string is static.
type TelephonyConfig struct {
	Greeting          string
	Voice             string
	Language          string
	TwilioVoice       string
	MaxSpokenChars    int
	NothingHeard      string
	Apology           string
	FallbackReply     string
	SystemPrompt      string
	TranscriptionLang string
	AudioFetchTimeout time.Duration
	InFlightWait      time.Duration
	WebhookBaseURL    string
	TwilioAuthToken   string
	TelnyxPublicKey   string
}

// CompletionConfig selects the chat completion backend
type CompletionConfig struct {
	Provider           string
	OpenAIModel        string
	GeminiModel        string
	TranscriptionModel string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled         bool
	Addr            string
	Password        string
	DB              int
	SessionTTL      time.Duration
	RealtimeChannel string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	CallTopic     string
	ConsumerGroup string
}

// RateLimitConfig holds per-minute request budgets. Zero disables a limit.
type RateLimitConfig struct {
	LoginPerMinute int
	AIPerMinute    int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Environment string
}

const defaultSystemPrompt = `Tu es IALynk, l'assistante téléphonique d'une agence immobilière française. ` +
	`Tu réponds en français, de façon professionnelle, chaleureuse et concise, en une ou deux phrases. ` +
	`Identifie l'intention de l'appelant (location, achat, vente, problème de locataire, rendez-vous, urgence) ` +
	`et termine toujours par une question pour qualifier sa demande.`

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Services.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "IALynk <notifications@ialynk.fr>")
	cfg.Services.AgencyNotifyEmail = os.Getenv("AGENCY_NOTIFY_EMAIL")
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Telephony configuration
	cfg.Telephony.Greeting = getEnvWithDefault("TELEPHONY_GREETING", "Bonjour, je suis l'assistante I A Lynk. Comment puis-je vous aider ?")
	cfg.Telephony.Voice = getEnvWithDefault("TELEPHONY_VOICE", "female")
	cfg.Telephony.TwilioVoice = getEnvWithDefault("TWILIO_VOICE", "alice")
	cfg.Telephony.Language = getEnvWithDefault("TELEPHONY_LANGUAGE", "fr-FR")
	cfg.Telephony.NothingHeard = getEnvWithDefault("TELEPHONY_NOTHING_HEARD", "Je suis désolée, je n'ai rien entendu.")
	cfg.Telephony.Apology = getEnvWithDefault("TELEPHONY_APOLOGY", "Une erreur est survenue. Veuillez réessayer plus tard.")
	cfg.Telephony.FallbackReply = getEnvWithDefault("TELEPHONY_FALLBACK_REPLY", "Pouvez-vous préciser votre demande, s'il vous plaît ?")
	cfg.Telephony.SystemPrompt = getEnvWithDefault("TELEPHONY_SYSTEM_PROMPT", defaultSystemPrompt)
	cfg.Telephony.TranscriptionLang = getEnvWithDefault("TELEPHONY_TRANSCRIPTION_LANGUAGE", "fr")
	cfg.Telephony.WebhookBaseURL = strings.TrimRight(os.Getenv("TELEPHONY_WEBHOOK_BASE_URL"), "/")
	cfg.Telephony.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Telephony.TelnyxPublicKey = os.Getenv("TELNYX_PUBLIC_KEY")

	maxSpoken := getEnvWithDefault("TELEPHONY_MAX_SPOKEN_CHARS", "220")
	cfg.Telephony.MaxSpokenChars, err = strconv.Atoi(maxSpoken)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TELEPHONY_MAX_SPOKEN_CHARS: %w", err)
	}

	audioTimeout := getEnvWithDefault("AUDIO_FETCH_TIMEOUT", "10s")
	cfg.Telephony.AudioFetchTimeout, err = time.ParseDuration(audioTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse AUDIO_FETCH_TIMEOUT: %w", err)
	}

	cfg.Telephony.InFlightWait, err = time.ParseDuration(getEnvWithDefault("TELEPHONY_INFLIGHT_WAIT", "8s"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TELEPHONY_INFLIGHT_WAIT: %w", err)
	}

	// Completion configuration
	cfg.Completion.Provider = getEnvWithDefault("COMPLETION_PROVIDER", CompletionProviderOpenAI)
	cfg.Completion.OpenAIModel = getEnvWithDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	cfg.Completion.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	cfg.Completion.TranscriptionModel = getEnvWithDefault("OPENAI_TRANSCRIPTION_MODEL", "whisper-1")
	switch cfg.Completion.Provider {
	case CompletionProviderOpenAI:
	case CompletionProviderGemini:
		if cfg.Services.GoogleAIAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_AI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Completion.Provider, ErrInvalidCompletionProvider)
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnvWithDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.RealtimeChannel = getEnvWithDefault("REALTIME_CHANNEL", "crm-events")
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	cfg.Redis.SessionTTL, err = time.ParseDuration(getEnvWithDefault("SESSION_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SESSION_TTL: %w", err)
	}

	// Kafka configuration
	cfg.Kafka.Enabled = getEnvWithDefault("KAFKA_ENABLED", "false") == "true"
	if cfg.Kafka.Enabled {
		brokers, err := requireEnv("KAFKA_BROKERS")
		if err != nil {
			return nil, err
		}
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.CallTopic = getEnvWithDefault("KAFKA_CALL_TOPIC", "call-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "call-log-workers")

	// Rate limit configuration
	cfg.RateLimit.LoginPerMinute, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_LOGIN_PER_MINUTE", "10"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_LOGIN_PER_MINUTE: %w", err)
	}
	cfg.RateLimit.AIPerMinute, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_AI_PER_MINUTE", "20"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_AI_PER_MINUTE: %w", err)
	}

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "80")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.Environment = getEnvWithDefault("GO_ENV", "development")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// IsProduction reports whether the server runs with GO_ENV=production
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
