// Package session tracks per-call state across independent webhook deliveries and
// guarantees that each saved recording is processed at most once.
package session

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("call session not found")

// State is the lifecycle position of a call.
type State string

const (
	StateRinging      State = "ringing"
	StateRecording    State = "recording"
	StateTranscribing State = "transcribing"
	StateResponding   State = "responding"
	StateEnded        State = "ended"
)

// Record is the stored view of one call.
type Record struct {
	CallID    string    `json:"call_id"`
	Provider  string    `json:"provider"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClaimStatus is the result of trying to take ownership of a recording.
type ClaimStatus int

const (
	// ClaimAcquired means the caller owns the recording and must run the turn.
	ClaimAcquired ClaimStatus = iota
	// ClaimInFlight means another delivery is still processing the recording.
	ClaimInFlight
	// ClaimCompleted means the recording was already answered; Reply holds the spoken text.
	ClaimCompleted
)

func (s ClaimStatus) String() string {
	switch s {
	case ClaimAcquired:
		return "acquired"
	case ClaimInFlight:
		return "in_flight"
	case ClaimCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Claim is returned by ClaimRecording.
type Claim struct {
	Status ClaimStatus
	Reply  string
}

const (
	recordingPending   = "pending"
	recordingCompleted = "completed"
)

// recordingEntry is what both backends persist per (call, recording).
type recordingEntry struct {
	Status string `json:"status"`
	Reply  string `json:"reply,omitempty"`
}
