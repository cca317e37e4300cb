// Package telnyx translates Telnyx Call Control webhooks to and from the
// provider-neutral call model.
package telnyx

import (
	"encoding/json"
	"fmt"

	"ialynk-server/internal/voicecall/processor"
)

type envelope struct {
	Data struct {
		EventType string  `json:"event_type"`
		Payload   payload `json:"payload"`
	} `json:"data"`
}

type payload struct {
	CallControlID string `json:"call_control_id"`
	RecordingID   string `json:"recording_id"`
	RecordingURLs struct {
		WAV string `json:"wav"`
	} `json:"recording_urls"`
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
}

// Decode reads a webhook body. Missing fields decode to empty strings and are
// left for the processor to reject.
func Decode(body []byte) (processor.CallEvent, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return processor.CallEvent{}, fmt.Errorf("failed to decode telnyx webhook: %w", err)
	}
	p := env.Data.Payload
	return processor.CallEvent{
		EventType:   processor.EventType(env.Data.EventType),
		CallID:      p.CallControlID,
		RecordingID: p.RecordingID,
		AudioURL:    p.RecordingURLs.WAV,
		From:        p.From,
		To:          p.To,
		Direction:   p.Direction,
		Provider:    processor.ProviderTelnyx,
	}, nil
}

// Voice is the speech configuration attached to every speak instruction.
type Voice struct {
	Voice    string
	Language string
}

type InstructionsResponse struct {
	Instructions []Instruction `json:"instructions"`
}

type Instruction struct {
	Type          string        `json:"type"`
	CallControlID string        `json:"call_control_id"`
	Payload       *SpeakPayload `json:"payload,omitempty"`
}

type SpeakPayload struct {
	Voice    string `json:"voice"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

type AckResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

const (
	StatusIgnored            = "ignored"
	StatusHangupAcknowledged = "hangup_acknowledged"
)

// Render builds the JSON body for a processed event. Results without
// instructions become a plain acknowledgement.
func Render(callID string, voice Voice, result processor.Result) any {
	if len(result.Instructions) == 0 {
		status := StatusIgnored
		if result.Outcome == processor.OutcomeHangupAcknowledged {
			status = StatusHangupAcknowledged
		}
		return AckResponse{OK: true, Status: status}
	}

	out := InstructionsResponse{Instructions: make([]Instruction, 0, len(result.Instructions))}
	for _, in := range result.Instructions {
		instruction := Instruction{Type: string(in.Type), CallControlID: callID}
		if in.Type == processor.InstructionSpeak {
			instruction.Payload = &SpeakPayload{Voice: voice.Voice, Language: voice.Language, Text: in.Text}
		}
		out.Instructions = append(out.Instructions, instruction)
	}
	return out
}

// Ignored is the acknowledgement used when a body cannot be processed at all.
func Ignored() AckResponse {
	return AckResponse{OK: true, Status: StatusIgnored}
}
