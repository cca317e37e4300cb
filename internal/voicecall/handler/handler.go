package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"ialynk-server/internal/observability"
	"ialynk-server/internal/voicecall/processor"
	"ialynk-server/internal/voicecall/telnyx"
	"ialynk-server/internal/voicecall/twilio"

	"github.com/gin-gonic/gin"
)

const (
	TelnyxWebhookPath = "/api/telnyx/webhook"
	TwilioVoicePath   = "/api/twilio/voice"

	maxWebhookBytes = 1 << 20
)

// Config holds what the codecs need to render responses. Nil verifiers disable
// signature checks for that provider.
type Config struct {
	TelnyxVoice     telnyx.Voice
	TwilioVoice     twilio.VoiceConfig
	WebhookBaseURL  string
	Apology         string
	TelnyxVerifier  *telnyx.Verifier
	TwilioValidator *twilio.Validator
}

type Handler struct {
	processor EventHandler
	config    Config
	logger    *observability.Logger
}

func New(processor EventHandler, config Config, logger *observability.Logger) Handler {
	config.WebhookBaseURL = strings.TrimRight(config.WebhookBaseURL, "/")
	if config.TwilioVoice.ActionURL == "" && config.WebhookBaseURL != "" {
		config.TwilioVoice.ActionURL = config.WebhookBaseURL + TwilioVoicePath
	}
	return Handler{
		processor: processor,
		config:    config,
		logger:    logger,
	}
}

// HandleTelnyxWebhook answers every Telnyx delivery with 200 and a JSON body,
// except deliveries whose signature does not verify.
func (h *Handler) HandleTelnyxWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	callID := ""
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error(ctx, "recovered panic in telnyx webhook", fmt.Errorf("panic: %v", r))
			if !c.Writer.Written() {
				c.JSON(http.StatusOK, telnyx.Render(callID, h.config.TelnyxVoice, h.apology(callID != "")))
			}
		}
	}()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		h.logger.Warn(ctx, fmt.Sprintf("failed to read telnyx webhook body: %v", err))
		c.JSON(http.StatusOK, telnyx.Ignored())
		return
	}

	if h.config.TelnyxVerifier != nil {
		err := h.config.TelnyxVerifier.Verify(body, c.GetHeader(telnyx.SignatureHeader), c.GetHeader(telnyx.TimestampHeader))
		if err != nil {
			h.logger.Warn(ctx, fmt.Sprintf("rejected telnyx webhook: %v", err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	event, err := telnyx.Decode(body)
	if err != nil {
		h.logger.Warn(ctx, err.Error())
		c.JSON(http.StatusOK, telnyx.Ignored())
		return
	}
	callID = event.CallID

	result := h.processor.HandleEvent(ctx, event)
	c.JSON(http.StatusOK, telnyx.Render(event.CallID, h.config.TelnyxVoice, result))
}

// HandleTwilioVoice answers every Twilio delivery with 200 and a TwiML document,
// except deliveries whose signature does not verify.
func (h *Handler) HandleTwilioVoice(c *gin.Context) {
	ctx := c.Request.Context()
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error(ctx, "recovered panic in twilio webhook", fmt.Errorf("panic: %v", r))
			if !c.Writer.Written() {
				h.writeTwiML(c, h.apology(true))
			}
		}
	}()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
	if err := c.Request.ParseForm(); err != nil {
		h.logger.Warn(ctx, fmt.Sprintf("failed to parse twilio webhook form: %v", err))
		h.writeTwiML(c, processor.Result{Outcome: processor.OutcomeIgnored})
		return
	}
	form := c.Request.PostForm

	if h.config.TwilioValidator != nil {
		if !h.config.TwilioValidator.Validate(h.requestURL(c), form, c.GetHeader(twilio.SignatureHeader)) {
			h.logger.Warn(ctx, "rejected twilio webhook: invalid signature")
			c.String(http.StatusUnauthorized, "invalid signature")
			return
		}
	}

	result := h.processor.HandleEvent(ctx, twilio.Decode(form))
	h.writeTwiML(c, result)
}

func (h *Handler) HandleTelnyxStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) writeTwiML(c *gin.Context, result processor.Result) {
	doc, err := twilio.Render(h.config.TwilioVoice, result)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to render twiml", err)
		doc = emptyTwiML
	}
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, doc)
}

const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// apology is the response of last resort. Telnyx instructions need a call id,
// so without one it falls back to an acknowledgement.
func (h *Handler) apology(addressable bool) processor.Result {
	if !addressable || h.config.Apology == "" {
		return processor.Result{Outcome: processor.OutcomeIgnored}
	}
	return processor.Result{
		Outcome: processor.OutcomeRecordingHandled,
		Instructions: []processor.Instruction{
			{Type: processor.InstructionSpeak, Text: h.config.Apology},
			{Type: processor.InstructionHangup},
		},
	}
}

// requestURL rebuilds the URL Twilio signed. Behind a proxy the configured
// public base URL is authoritative.
func (h *Handler) requestURL(c *gin.Context) string {
	if h.config.WebhookBaseURL != "" {
		return h.config.WebhookBaseURL + c.Request.URL.RequestURI()
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
