package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	"ialynk-server/internal/api"
	"ialynk-server/internal/config"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/store"

	assistantHandler "ialynk-server/internal/assistant/handler"
	assistantProcessor "ialynk-server/internal/assistant/processor"
	authHandler "ialynk-server/internal/auth/handler"
	authProcessor "ialynk-server/internal/auth/processor"
	calendarHandler "ialynk-server/internal/calendar/handler"
	calendarProcessor "ialynk-server/internal/calendar/processor"
	callLogHandler "ialynk-server/internal/calllog/handler"
	callLogProcessor "ialynk-server/internal/calllog/processor"
	"ialynk-server/internal/clients/gemini"
	kafkaClient "ialynk-server/internal/clients/kafka"
	"ialynk-server/internal/clients/openai"
	redisClient "ialynk-server/internal/clients/redis"
	contactHandler "ialynk-server/internal/contacts/handler"
	contactProcessor "ialynk-server/internal/contacts/processor"
	dashboardHandler "ialynk-server/internal/dashboard/handler"
	inboxHandler "ialynk-server/internal/inbox/handler"
	inboxProcessor "ialynk-server/internal/inbox/processor"
	"ialynk-server/internal/ratelimit"
	"ialynk-server/internal/realtime"
	settingsHandler "ialynk-server/internal/settings/handler"
	settingsProcessor "ialynk-server/internal/settings/processor"
	ticketHandler "ialynk-server/internal/tickets/handler"
	ticketProcessor "ialynk-server/internal/tickets/processor"
	"ialynk-server/internal/voicecall/events"
	voiceCallHandler "ialynk-server/internal/voicecall/handler"
	voiceCallProcessor "ialynk-server/internal/voicecall/processor"
	"ialynk-server/internal/voicecall/session"
	"ialynk-server/internal/voicecall/telnyx"
	"ialynk-server/internal/voicecall/twilio"
)

const (
	callEventQueueSize      = 1024
	callEventPublishTimeout = 5 * time.Second
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      authHandler.Handler
	ContactHandler   contactHandler.Handler
	TicketHandler    ticketHandler.Handler
	AssistantHandler assistantHandler.Handler
	CallLogHandler   callLogHandler.Handler
	CalendarHandler  calendarHandler.Handler
	InboxHandler     inboxHandler.Handler
	SettingsHandler  settingsHandler.Handler
	DashboardHandler dashboardHandler.Handler
	RealtimeHandler  realtime.Handler
	VoiceCallHandler voiceCallHandler.Handler

	// Middleware
	RateLimits api.RateLimits

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	closers       []io.Closer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.closers = append(deps.closers, &deps.Store)

	// Initialize AI clients
	openAIClient, err := openai.NewClient(cfg.Services.OpenAIAPIKey, openai.Config{
		ChatModel:          cfg.Completion.OpenAIModel,
		TranscriptionModel: cfg.Completion.TranscriptionModel,
		Language:           cfg.Telephony.TranscriptionLang,
	}, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	completer, err := deps.completer(ctx, cfg, openAIClient)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	// Initialize Redis (optional)
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if deps.RedisClient != nil {
		deps.closers = append(deps.closers, deps.RedisClient)
	}

	// Initialize rate limits; counts are shared through Redis when it is enabled
	var counter ratelimit.Counter = ratelimit.NewMemoryCounter()
	if deps.RedisClient != nil {
		counter = deps.RedisClient
	}
	limiter := ratelimit.NewService(counter, logger)
	deps.RateLimits = api.RateLimits{
		Login: limiter.Middleware("login", cfg.RateLimit.LoginPerMinute, ratelimit.ByClientIP),
		AI:    limiter.Middleware("ai", cfg.RateLimit.AIPerMinute, ratelimit.ByUser),
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Initialize CRM processors and handlers
	contactProc := contactProcessor.New(&deps.Store, logger)
	deps.ContactHandler = contactHandler.New(&contactProc, logger)

	ticketProc := ticketProcessor.New(&deps.Store, logger)
	deps.TicketHandler = ticketHandler.New(&ticketProc, logger)

	assistantProc := assistantProcessor.New(&deps.Store, completer, logger)
	deps.AssistantHandler = assistantHandler.New(&assistantProc, logger)

	callLogProc := callLogProcessor.New(&deps.Store, logger)
	deps.CallLogHandler = callLogHandler.New(&callLogProc, logger)

	calendarProc := calendarProcessor.New(&deps.Store, logger)
	deps.CalendarHandler = calendarHandler.New(&calendarProc, logger)

	inboxProc := inboxProcessor.New(&deps.Store, logger)
	deps.InboxHandler = inboxHandler.New(&inboxProc, logger)

	settingsProc := settingsProcessor.New(&deps.Store, logger)
	deps.SettingsHandler = settingsHandler.New(&settingsProc, logger)

	deps.DashboardHandler = dashboardHandler.New(&deps.Store, logger)

	// Initialize realtime handler; a nil subscriber answers 503
	var subscriber realtime.Subscriber
	if deps.RedisClient != nil {
		subscriber = deps.RedisClient
	}
	var allowedOrigins []string
	if cfg.Server.IsProduction() {
		allowedOrigins = []string{cfg.Services.WebAppURI}
	}
	deps.RealtimeHandler = realtime.New(subscriber, cfg.Redis.RealtimeChannel, allowedOrigins, logger)

	// Initialize voice call processor and handler
	deps.VoiceCallHandler, err = deps.voiceCallHandler(ctx, cfg, openAIClient, completer)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	return deps, nil
}

func (d *Dependencies) completer(ctx context.Context, cfg *config.Config, openAIClient *openai.Client) (assistantProcessor.Completer, error) {
	if cfg.Completion.Provider != config.CompletionProviderGemini {
		return openAIClient, nil
	}
	geminiClient, err := gemini.NewClient(ctx, cfg.Services.GoogleAIAPIKey, cfg.Completion.GeminiModel, d.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	d.closers = append(d.closers, geminiClient)
	return geminiClient, nil
}

func (d *Dependencies) voiceCallHandler(
	ctx context.Context,
	cfg *config.Config,
	openAIClient *openai.Client,
	completer voiceCallProcessor.Completer,
) (voiceCallHandler.Handler, error) {
	var sessions voiceCallProcessor.SessionStore = session.NewMemoryStore(cfg.Redis.SessionTTL)
	if d.RedisClient != nil {
		sessions = session.NewRedisStore(d.RedisClient, cfg.Redis.SessionTTL)
	}

	var publisher voiceCallProcessor.EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		d.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CallTopic,
		}, d.Logger)
		async := events.NewAsyncPublisher(
			events.NewPublisher(d.KafkaProducer, d.Logger),
			callEventQueueSize,
			callEventPublishTimeout,
			d.Logger,
		)
		// closed in reverse: the queue drains before the producer shuts down
		d.closers = append(d.closers, d.KafkaProducer, async)
		publisher = async
	}

	turnProcessor := voiceCallProcessor.New(
		voiceCallProcessor.Config{
			Greeting:       cfg.Telephony.Greeting,
			NothingHeard:   cfg.Telephony.NothingHeard,
			Apology:        cfg.Telephony.Apology,
			FallbackReply:  cfg.Telephony.FallbackReply,
			SystemPrompt:   cfg.Telephony.SystemPrompt,
			MaxSpokenChars: cfg.Telephony.MaxSpokenChars,
			InFlightWait:   cfg.Telephony.InFlightWait,
		},
		voiceCallProcessor.NewHTTPAudioFetcher(cfg.Telephony.AudioFetchTimeout),
		openAIClient,
		completer,
		sessions,
		publisher,
		d.Logger,
	)

	handlerConfig := voiceCallHandler.Config{
		TelnyxVoice:    telnyx.Voice{Voice: cfg.Telephony.Voice, Language: cfg.Telephony.Language},
		TwilioVoice:    twilio.VoiceConfig{Voice: cfg.Telephony.TwilioVoice, Language: cfg.Telephony.Language},
		WebhookBaseURL: cfg.Telephony.WebhookBaseURL,
		Apology:        cfg.Telephony.Apology,
	}
	if cfg.Telephony.TelnyxPublicKey != "" {
		verifier, err := telnyx.NewVerifier(cfg.Telephony.TelnyxPublicKey)
		if err != nil {
			return voiceCallHandler.Handler{}, fmt.Errorf("failed to parse TELNYX_PUBLIC_KEY: %w", err)
		}
		handlerConfig.TelnyxVerifier = verifier
	}
	if cfg.Telephony.TwilioAuthToken != "" {
		handlerConfig.TwilioValidator = twilio.NewValidator(cfg.Telephony.TwilioAuthToken)
	}
	if cfg.Server.IsProduction() && (handlerConfig.TelnyxVerifier == nil || handlerConfig.TwilioValidator == nil) {
		d.Logger.Warn(ctx, "telephony webhook signature verification is disabled for at least one provider")
	}

	return voiceCallHandler.New(turnProcessor, handlerConfig, d.Logger), nil
}

// Cleanup closes all resources that need cleanup, in reverse order of creation
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			d.Logger.Error(ctx, "failed to close dependency", err)
		}
	}
	d.closers = nil
}
