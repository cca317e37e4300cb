package processor

import "time"

// EventType is the provider-neutral call lifecycle discriminator.
type EventType string

const (
	EventCallInitiated  EventType = "call.initiated"
	EventRecordingSaved EventType = "call.recording.saved"
	EventCallHangup     EventType = "call.hangup"
)

// Provider names the telephony integration an event came from.
type Provider string

const (
	ProviderTelnyx Provider = "telnyx"
	ProviderTwilio Provider = "twilio"
)

// CallEvent is a decoded webhook delivery. Codecs build it at the HTTP boundary.
type CallEvent struct {
	EventType   EventType
	CallID      string
	RecordingID string
	AudioURL    string
	From        string
	To          string
	Direction   string
	Provider    Provider
}

// InstructionType is a provider-agnostic voice-control directive.
type InstructionType string

const (
	InstructionAnswer      InstructionType = "answer"
	InstructionSpeak       InstructionType = "speak"
	InstructionRecordStart InstructionType = "record_start"
	InstructionHangup      InstructionType = "hangup"
)

// Instruction is one directive; Text is only set for speak.
type Instruction struct {
	Type InstructionType
	Text string
}

// Outcome classifies how an event was handled.
type Outcome string

const (
	OutcomeAnsweredInstructions Outcome = "answered_instructions"
	OutcomeRecordingHandled     Outcome = "recording_handled"
	OutcomeHangupAcknowledged   Outcome = "hangup_acknowledged"
	OutcomeIgnored              Outcome = "ignored"
)

// Result is what the webhook handler renders for the provider.
type Result struct {
	Outcome      Outcome
	Instructions []Instruction
}

// Config carries the static spoken strings and limits of the turn.
type Config struct {
	Greeting       string
	NothingHeard   string
	Apology        string
	FallbackReply  string
	SystemPrompt   string
	MaxSpokenChars int
	// InFlightWait bounds how long a duplicate delivery waits for the reply of the
	// delivery that owns the recording.
	InFlightWait time.Duration
}

func speak(text string) Instruction {
	return Instruction{Type: InstructionSpeak, Text: text}
}

func hangup() Instruction {
	return Instruction{Type: InstructionHangup}
}
