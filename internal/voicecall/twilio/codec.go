// Package twilio translates Twilio Programmable Voice webhooks to and from the
// provider-neutral call model.
package twilio

import (
	"net/url"
	"strings"

	"ialynk-server/internal/voicecall/processor"
)

const (
	statusCompleted = "completed"
	wavSuffix       = ".wav"
)

// terminal call statuses that mean the caller is gone
var hangupStatuses = map[string]bool{
	statusCompleted: true,
	"busy":          true,
	"failed":        true,
	"no-answer":     true,
	"canceled":      true,
}

// Decode maps form fields to a call event. A recording URL always wins, so the
// recording status callback and the Record action resolve to the same recording.
func Decode(form url.Values) processor.CallEvent {
	event := processor.CallEvent{
		CallID:      form.Get("CallSid"),
		RecordingID: form.Get("RecordingSid"),
		From:        form.Get("From"),
		To:          form.Get("To"),
		Direction:   form.Get("Direction"),
		Provider:    processor.ProviderTwilio,
	}

	recordingURL := strings.TrimSpace(form.Get("RecordingUrl"))
	switch {
	case recordingURL != "":
		event.EventType = processor.EventRecordingSaved
		event.AudioURL = wavURL(recordingURL)
	case hangupStatuses[form.Get("CallStatus")]:
		event.EventType = processor.EventCallHangup
	default:
		event.EventType = processor.EventCallInitiated
	}
	return event
}

// Twilio serves recordings without an extension as JSON metadata.
func wavURL(recordingURL string) string {
	if strings.HasSuffix(strings.ToLower(recordingURL), wavSuffix) {
		return recordingURL
	}
	return recordingURL + wavSuffix
}
