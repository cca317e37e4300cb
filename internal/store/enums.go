package store

// Ticket statuses, in the order the kanban board shows them.
const (
	TicketStatusUrgent     = "Urgent"
	TicketStatusNew        = "Nouvelle demande"
	TicketStatusInProgress = "En cours"
	TicketStatusScheduled  = "Programmé"
	TicketStatusResolved   = "Résolu"
)

const (
	TicketPriorityNormal   = "normal"
	TicketPriorityHigh     = "elevee"
	TicketPriorityCritical = "critique"
)

const (
	ConversationChannelAssistant = "assistant"
	ConversationChannelCall      = "call"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

const (
	CallStatusRinging  = "ringing"
	CallStatusAnswered = "answered"
	CallStatusEnded    = "ended"
)

const (
	CalendarEventTypeVisit   = "visite"
	CalendarEventTypeCall    = "appel"
	CalendarEventTypeMeeting = "réunion"
	CalendarEventTypeOther   = "autre"
)

const CalendarEventStatusPlanned = "prévu"

const (
	TelephonyProviderTelnyx = "telnyx"
	TelephonyProviderTwilio = "twilio"
	TelephonyProviderCustom = "custom"
)

const (
	TelephonyStatusConnected    = "connected"
	TelephonyStatusDisconnected = "disconnected"
)

const (
	AssistantTonePro      = "pro"
	AssistantToneFriendly = "friendly"
	AssistantToneConcise  = "concise"
)

const (
	AssistantLanguageFrench  = "fr"
	AssistantLanguageEnglish = "en"
)

const InboxChannelCall = "call"

const AuthTypeEmail = "email"
