package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ialynk-server/internal/clients/completion"
	"ialynk-server/internal/observability"
	"ialynk-server/internal/voicecall/events"
	"ialynk-server/internal/voicecall/session"
)

const defaultClaimPollInterval = 250 * time.Millisecond

var errEmptyTranscript = errors.New("empty transcript")

// TurnProcessor runs the single-turn-then-hangup conversation: greet and record, then
// transcribe the recording, answer it once and hang up.
type TurnProcessor struct {
	config      Config
	fetcher     AudioFetcher
	transcriber Transcriber
	completer   Completer
	sessions    SessionStore
	publisher   EventPublisher
	logger      *observability.Logger

	claimPollInterval time.Duration
}

// New builds the processor. The publisher must not block: wrap a broker-backed
// publisher in events.AsyncPublisher.
func New(
	config Config,
	fetcher AudioFetcher,
	transcriber Transcriber,
	completer Completer,
	sessions SessionStore,
	publisher EventPublisher,
	logger *observability.Logger,
) *TurnProcessor {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TurnProcessor{
		config:      config,
		fetcher:     fetcher,
		transcriber: transcriber,
		completer:   completer,
		sessions:    sessions,
		publisher:   publisher,
		logger:      logger,

		claimPollInterval: defaultClaimPollInterval,
	}
}

// HandleEvent never fails: every path produces instructions the provider can execute.
func (p *TurnProcessor) HandleEvent(ctx context.Context, event CallEvent) Result {
	if event.EventType == "" || event.CallID == "" {
		p.logger.Warn(ctx, "ignoring call event without event type or call id")
		return Result{Outcome: OutcomeIgnored}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: event.CallID},
		observability.Field{Key: "event_type", Value: string(event.EventType)},
		observability.Field{Key: "provider", Value: string(event.Provider)},
	)

	switch event.EventType {
	case EventCallInitiated:
		return p.handleInitiated(ctx, event)
	case EventRecordingSaved:
		return p.handleRecordingSaved(ctx, event)
	case EventCallHangup:
		return p.handleHangup(ctx, event)
	default:
		p.logger.Debug(ctx, "ignoring unhandled call event type")
		return Result{Outcome: OutcomeIgnored}
	}
}

func (p *TurnProcessor) handleInitiated(ctx context.Context, event CallEvent) Result {
	if err := p.sessions.Start(ctx, event.CallID, string(event.Provider)); err != nil {
		p.logger.Error(ctx, "failed to start call session", err)
	}
	p.publish(ctx, event, events.TypeCallInitiated, "", "")
	p.setState(ctx, event.CallID, session.StateRecording)

	p.logger.Info(ctx, "call answered")
	return Result{
		Outcome: OutcomeAnsweredInstructions,
		Instructions: []Instruction{
			{Type: InstructionAnswer},
			speak(p.config.Greeting),
			{Type: InstructionRecordStart},
		},
	}
}

func (p *TurnProcessor) handleRecordingSaved(ctx context.Context, event CallEvent) Result {
	if strings.TrimSpace(event.AudioURL) == "" {
		p.logger.Warn(ctx, "recording event without audio url")
		return p.spokenHangup(p.config.NothingHeard)
	}

	recordingID := event.RecordingID
	if recordingID == "" {
		recordingID = event.AudioURL
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "recording_id", Value: recordingID})

	claim, err := p.sessions.ClaimRecording(ctx, event.CallID, recordingID)
	if err != nil {
		p.logger.Error(ctx, "failed to claim recording, processing anyway", err)
		claim = session.Claim{Status: session.ClaimAcquired}
	}
	switch claim.Status {
	case session.ClaimInFlight:
		p.logger.Info(ctx, "recording already being processed, waiting for its reply")
		return p.awaitReply(ctx, event.CallID, recordingID)
	case session.ClaimCompleted:
		p.logger.Info(ctx, "recording already answered, replaying reply")
		return p.spokenHangup(claim.Reply)
	}

	transcript, reply, err := p.runTurn(ctx, event)
	switch {
	case errors.Is(err, errEmptyTranscript):
		p.logger.Info(ctx, "caller said nothing")
		reply = p.config.NothingHeard
	case err != nil:
		p.logger.Error(ctx, "conversational turn failed", err)
		if releaseErr := p.sessions.ReleaseRecording(ctx, event.CallID, recordingID); releaseErr != nil {
			p.logger.Error(ctx, "failed to release recording claim", releaseErr)
		}
		return p.spokenHangup(p.config.Apology)
	}

	if err := p.sessions.CompleteRecording(ctx, event.CallID, recordingID, reply); err != nil {
		p.logger.Error(ctx, "failed to store recording reply", err)
	}
	if transcript != "" {
		turn := event
		turn.RecordingID = recordingID
		p.publish(ctx, turn, events.TypeTurnCompleted, transcript, reply)
	}

	p.logger.Info(ctx, "recording answered")
	return p.spokenHangup(reply)
}

// awaitReply polls the claim held by another delivery of the same recording. Whichever
// delivery the provider keeps must speak, so this one replays the stored reply, or
// apologizes when the owner failed or does not finish within InFlightWait.
func (p *TurnProcessor) awaitReply(ctx context.Context, callID, recordingID string) Result {
	deadline := time.NewTimer(p.config.InFlightWait)
	defer deadline.Stop()
	ticker := time.NewTicker(p.claimPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return p.spokenHangup(p.config.Apology)
		case <-deadline.C:
			p.logger.Warn(ctx, "recording still in flight after wait, apologizing")
			return p.spokenHangup(p.config.Apology)
		case <-ticker.C:
		}

		claim, err := p.sessions.ClaimRecording(ctx, callID, recordingID)
		if err != nil {
			p.logger.Error(ctx, "failed to poll recording claim", err)
			continue
		}
		switch claim.Status {
		case session.ClaimCompleted:
			p.logger.Info(ctx, "replaying reply of concurrent delivery")
			return p.spokenHangup(claim.Reply)
		case session.ClaimAcquired:
			// The owner failed and released the claim after apologizing.
			if err := p.sessions.ReleaseRecording(ctx, callID, recordingID); err != nil {
				p.logger.Error(ctx, "failed to release recording claim", err)
			}
			return p.spokenHangup(p.config.Apology)
		}
	}
}

// runTurn fetches, transcribes and completes strictly in sequence.
func (p *TurnProcessor) runTurn(ctx context.Context, event CallEvent) (string, string, error) {
	audio, err := p.fetcher.Fetch(ctx, event.AudioURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch audio: %w", err)
	}

	p.setState(ctx, event.CallID, session.StateTranscribing)
	transcript, err := p.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return "", "", fmt.Errorf("transcribe: %w", err)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", "", errEmptyTranscript
	}

	p.setState(ctx, event.CallID, session.StateResponding)
	reply, err := p.completer.Complete(ctx, completion.Request{
		SystemPrompt: p.config.SystemPrompt,
		Messages:     []completion.Message{{Role: completion.RoleUser, Content: transcript}},
	})
	if err != nil {
		return "", "", fmt.Errorf("complete: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = p.config.FallbackReply
	}
	return transcript, LimitSpoken(reply, p.config.MaxSpokenChars), nil
}

func (p *TurnProcessor) handleHangup(ctx context.Context, event CallEvent) Result {
	p.setState(ctx, event.CallID, session.StateEnded)
	p.publish(ctx, event, events.TypeCallEnded, "", "")
	p.logger.Info(ctx, "call ended")
	return Result{Outcome: OutcomeHangupAcknowledged}
}

func (p *TurnProcessor) spokenHangup(text string) Result {
	return Result{
		Outcome:      OutcomeRecordingHandled,
		Instructions: []Instruction{speak(text), hangup()},
	}
}

func (p *TurnProcessor) setState(ctx context.Context, callID string, state session.State) {
	if err := p.sessions.SetState(ctx, callID, state); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("failed to set call state %s", state), err)
	}
}

// publish is best effort and detached from request cancellation.
func (p *TurnProcessor) publish(ctx context.Context, event CallEvent, eventType, transcript, reply string) {
	err := p.publisher.Publish(context.WithoutCancel(ctx), events.CallEvent{
		Type:        eventType,
		Provider:    string(event.Provider),
		CallID:      event.CallID,
		RecordingID: event.RecordingID,
		From:        event.From,
		To:          event.To,
		Direction:   event.Direction,
		Transcript:  transcript,
		Reply:       reply,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to publish call event", err)
	}
}
