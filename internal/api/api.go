package api

import (
	"net/http"

	assistantHandler "ialynk-server/internal/assistant/handler"
	authHandler "ialynk-server/internal/auth/handler"
	calendarHandler "ialynk-server/internal/calendar/handler"
	callLogHandler "ialynk-server/internal/calllog/handler"
	contactHandler "ialynk-server/internal/contacts/handler"
	dashboardHandler "ialynk-server/internal/dashboard/handler"
	inboxHandler "ialynk-server/internal/inbox/handler"
	"ialynk-server/internal/realtime"
	settingsHandler "ialynk-server/internal/settings/handler"
	ticketHandler "ialynk-server/internal/tickets/handler"
	voiceCallHandler "ialynk-server/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

// RateLimits holds request budget middleware. Nil entries are skipped.
type RateLimits struct {
	Login gin.HandlerFunc
	AI    gin.HandlerFunc
}

type API struct {
	router           *gin.RouterGroup
	rateLimits       RateLimits
	authHandler      authHandler.Handler
	contactHandler   contactHandler.Handler
	ticketHandler    ticketHandler.Handler
	assistantHandler assistantHandler.Handler
	callLogHandler   callLogHandler.Handler
	calendarHandler  calendarHandler.Handler
	inboxHandler     inboxHandler.Handler
	settingsHandler  settingsHandler.Handler
	dashboardHandler dashboardHandler.Handler
	realtimeHandler  realtime.Handler
	voiceCallHandler voiceCallHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	contactHandler contactHandler.Handler,
	ticketHandler ticketHandler.Handler,
	assistantHandler assistantHandler.Handler,
	callLogHandler callLogHandler.Handler,
	calendarHandler calendarHandler.Handler,
	inboxHandler inboxHandler.Handler,
	settingsHandler settingsHandler.Handler,
	dashboardHandler dashboardHandler.Handler,
	realtimeHandler realtime.Handler,
	voiceCallHandler voiceCallHandler.Handler,
	rateLimits RateLimits,
) API {
	return API{
		router:           router,
		rateLimits:       rateLimits,
		authHandler:      authHandler,
		contactHandler:   contactHandler,
		ticketHandler:    ticketHandler,
		assistantHandler: assistantHandler,
		callLogHandler:   callLogHandler,
		calendarHandler:  calendarHandler,
		inboxHandler:     inboxHandler,
		settingsHandler:  settingsHandler,
		dashboardHandler: dashboardHandler,
		realtimeHandler:  realtimeHandler,
		voiceCallHandler: voiceCallHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Telephony providers call these directly. They always answer 200.
	a.router.GET(voiceCallHandler.TelnyxWebhookPath, a.voiceCallHandler.HandleTelnyxStatus)
	a.router.POST(voiceCallHandler.TelnyxWebhookPath, a.voiceCallHandler.HandleTelnyxWebhook)
	a.router.POST(voiceCallHandler.TwilioVoicePath, a.voiceCallHandler.HandleTwilioVoice)

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", withLimit(a.rateLimits.Login, a.authHandler.HandleEmailLogin)...)
		authGroup.POST("/signup", a.authHandler.HandleEmailSignup)
	}

	// Browsers cannot set headers on websocket upgrades, the middleware also reads ?token=
	apiGroup.GET("/realtime", a.authHandler.HandleJWTMiddleware, a.realtimeHandler.HandleRealtime)

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/me", a.authHandler.GetUserInfo)

		contacts := protectedGroup.Group("/contacts")
		contacts.GET("", a.contactHandler.HandleListContacts)
		contacts.POST("", a.contactHandler.HandleCreateContact)
		contacts.GET("/:contact_id", a.contactHandler.HandleGetContact)
		contacts.PUT("/:contact_id", a.contactHandler.HandleUpdateContact)
		contacts.DELETE("/:contact_id", a.contactHandler.HandleDeleteContact)

		tickets := protectedGroup.Group("/tickets")
		tickets.GET("", a.ticketHandler.HandleListTickets)
		tickets.GET("/board", a.ticketHandler.HandleGetBoard)
		tickets.POST("", a.ticketHandler.HandleCreateTicket)
		tickets.GET("/:ticket_id", a.ticketHandler.HandleGetTicket)
		tickets.PUT("/:ticket_id", a.ticketHandler.HandleUpdateTicket)
		tickets.PATCH("/:ticket_id/status", a.ticketHandler.HandleUpdateTicketStatus)
		tickets.DELETE("/:ticket_id", a.ticketHandler.HandleDeleteTicket)
		tickets.GET("/:ticket_id/history", a.ticketHandler.HandleGetTicketHistory)

		assistant := protectedGroup.Group("/assistant")
		assistant.POST("", withLimit(a.rateLimits.AI, a.assistantHandler.HandleChat)...)
		assistant.GET("/conversations", a.assistantHandler.HandleListConversations)
		assistant.GET("/conversations/:conversation_id/messages", a.assistantHandler.HandleGetConversationMessages)
		assistant.POST("/reply-drafts", withLimit(a.rateLimits.AI, a.assistantHandler.HandleReplyDrafts)...)

		calls := protectedGroup.Group("/calls")
		calls.GET("", a.callLogHandler.HandleListCalls)
		calls.GET("/:call_id/messages", a.callLogHandler.HandleGetCallMessages)

		calendar := protectedGroup.Group("/calendar/events")
		calendar.GET("", a.calendarHandler.HandleListEvents)
		calendar.POST("", a.calendarHandler.HandleCreateEvent)
		calendar.GET("/:event_id", a.calendarHandler.HandleGetEvent)
		calendar.PUT("/:event_id", a.calendarHandler.HandleUpdateEvent)
		calendar.PATCH("/:event_id/time", a.calendarHandler.HandleRescheduleEvent)
		calendar.DELETE("/:event_id", a.calendarHandler.HandleDeleteEvent)

		inbox := protectedGroup.Group("/inbox")
		inbox.GET("", a.inboxHandler.HandleListMessages)
		inbox.GET("/:message_id", a.inboxHandler.HandleOpenMessage)
		inbox.PATCH("/:message_id/read", a.inboxHandler.HandleSetReadState)

		settings := protectedGroup.Group("/settings")
		settings.GET("/telephony", a.settingsHandler.HandleGetTelephony)
		settings.PUT("/telephony", a.settingsHandler.HandleUpdateTelephony)
		settings.POST("/telephony/check", a.settingsHandler.HandleCheckTelephony)
		settings.GET("/assistant", a.settingsHandler.HandleGetAssistantPreferences)
		settings.PUT("/assistant", a.settingsHandler.HandleUpdateAssistantPreferences)
		settings.GET("/agency", a.settingsHandler.HandleGetAgency)
		settings.PUT("/agency", a.settingsHandler.HandleUpdateAgency)

		protectedGroup.GET("/stats", a.dashboardHandler.HandleGetStats)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

func withLimit(limit gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if limit == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{limit, handler}
}
