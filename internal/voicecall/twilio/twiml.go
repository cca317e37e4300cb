package twilio

import (
	"fmt"
	"strconv"

	"ialynk-server/internal/voicecall/processor"

	"github.com/twilio/twilio-go/twiml"
)

// Record limits for the caller's single utterance.
const (
	recordTimeoutSeconds = 5
	recordMaxSeconds     = 30
)

// VoiceConfig holds the static TwiML attributes.
type VoiceConfig struct {
	Voice     string
	Language  string
	ActionURL string
}

// Render builds a TwiML document. answer has no TwiML equivalent: Twilio
// answers the call by fetching the document.
func Render(cfg VoiceConfig, result processor.Result) (string, error) {
	elements := make([]twiml.Element, 0, len(result.Instructions))
	for _, in := range result.Instructions {
		switch in.Type {
		case processor.InstructionSpeak:
			elements = append(elements, &twiml.VoiceSay{
				Message:  in.Text,
				Voice:    cfg.Voice,
				Language: cfg.Language,
			})
		case processor.InstructionRecordStart:
			elements = append(elements, &twiml.VoiceRecord{
				Action:    cfg.ActionURL,
				Method:    "POST",
				Timeout:   strconv.Itoa(recordTimeoutSeconds),
				MaxLength: strconv.Itoa(recordMaxSeconds),
				PlayBeep:  "true",
				Trim:      "do-not-trim",
			})
		case processor.InstructionHangup:
			elements = append(elements, &twiml.VoiceHangup{})
		}
	}

	doc, err := twiml.Voice(elements)
	if err != nil {
		return "", fmt.Errorf("failed to render twiml: %w", err)
	}
	return doc, nil
}
