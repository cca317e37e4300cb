package apierrors

import (
	"errors"

	assistantProcessor "ialynk-server/internal/assistant/processor"
	authProcessor "ialynk-server/internal/auth/processor"
	calendarProcessor "ialynk-server/internal/calendar/processor"
	calllogProcessor "ialynk-server/internal/calllog/processor"
	contactsProcessor "ialynk-server/internal/contacts/processor"
	inboxProcessor "ialynk-server/internal/inbox/processor"
	settingsProcessor "ialynk-server/internal/settings/processor"
	"ialynk-server/internal/store"
	ticketsProcessor "ialynk-server/internal/tickets/processor"
)

// MapError converts domain errors to APIErrors. An APIError is returned as-is and
// anything unknown becomes a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Auth
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")
	case errors.Is(err, authProcessor.ErrIncorrectPassword):
		return Unauthorized("Invalid email or password")
	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")
	case errors.Is(err, authProcessor.ErrExpiredToken),
		errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Authorization token is missing or invalid")

	// Contacts
	case errors.Is(err, contactsProcessor.ErrContactNotFound):
		return NotFound(CodeContactNotFound, "Contact not found")

	// Tickets
	case errors.Is(err, ticketsProcessor.ErrTicketNotFound):
		return NotFound(CodeTicketNotFound, "Ticket not found")
	case errors.Is(err, ticketsProcessor.ErrInvalidTicketStatus):
		return BadRequest(CodeInvalidStatus, "Invalid ticket status")
	case errors.Is(err, ticketsProcessor.ErrInvalidTicketPriority):
		return BadRequest(CodeInvalidPriority, "Invalid ticket priority")
	case errors.Is(err, ticketsProcessor.ErrContactNotFound):
		return NotFound(CodeContactNotFound, "Contact not found")

	// Assistant
	case errors.Is(err, assistantProcessor.ErrConversationNotFound):
		return NotFound(CodeConversationNotFound, "Conversation not found")
	case errors.Is(err, assistantProcessor.ErrInvalidMessages):
		return BadRequest(CodeInvalidMessages, "The last message must come from the user")
	case errors.Is(err, assistantProcessor.ErrCompletionFailed),
		errors.Is(err, assistantProcessor.ErrInvalidDraftResponse):
		return ServiceUnavailable(CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.", err)

	// Call log
	case errors.Is(err, calllogProcessor.ErrCallNotFound):
		return NotFound(CodeCallNotFound, "Call not found")

	// Calendar
	case errors.Is(err, calendarProcessor.ErrEventNotFound):
		return NotFound(CodeEventNotFound, "Event not found")
	case errors.Is(err, calendarProcessor.ErrInvalidEventType):
		return BadRequest(CodeInvalidEventType, "Event type must be one of: visite, appel, réunion, autre")
	case errors.Is(err, calendarProcessor.ErrInvalidTimeRange):
		return BadRequest(CodeInvalidTimeRange, "An event must end after it starts")

	// Inbox
	case errors.Is(err, inboxProcessor.ErrMessageNotFound):
		return NotFound(CodeMessageNotFound, "Message not found")
	case errors.Is(err, inboxProcessor.ErrInvalidFilter):
		return BadRequest(CodeInvalidFilter, "Filter must be one of: recent, oldest, unread, read")

	// Settings
	case errors.Is(err, settingsProcessor.ErrInvalidProvider):
		return BadRequest(CodeInvalidProvider, "Provider must be one of: telnyx, twilio, custom")
	case errors.Is(err, settingsProcessor.ErrPhoneNumberTaken):
		return Conflict(CodePhoneNumberTaken, "This phone number is already used by another account")
	case errors.Is(err, settingsProcessor.ErrInvalidPreferences):
		return BadRequest(CodeInvalidPreferences, "Tone must be pro, friendly or concise and language fr or en")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
