package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	record    Record
	expiresAt time.Time
}

type memoryRecording struct {
	entry     recordingEntry
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. It only deduplicates deliveries that reach the
// same instance; use RedisStore when running more than one replica.
type MemoryStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	now        func() time.Time
	calls      map[string]memoryRecord
	recordings map[string]memoryRecording
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:        ttl,
		now:        time.Now,
		calls:      make(map[string]memoryRecord),
		recordings: make(map[string]memoryRecording),
	}
}

func (s *MemoryStore) Start(_ context.Context, callID, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purge()

	now := s.now()
	s.calls[callID] = memoryRecord{
		record:    Record{CallID: callID, Provider: provider, State: StateRinging, UpdatedAt: now},
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// SetState moves the call to state, creating the record when the initiated event was missed.
func (s *MemoryStore) SetState(_ context.Context, callID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purge()

	now := s.now()
	rec, ok := s.calls[callID]
	if !ok {
		rec.record = Record{CallID: callID}
	}
	rec.record.State = state
	rec.record.UpdatedAt = now
	rec.expiresAt = now.Add(s.ttl)
	s.calls[callID] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, callID string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purge()

	rec, ok := s.calls[callID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.record, nil
}

func (s *MemoryStore) ClaimRecording(_ context.Context, callID, recordingID string) (Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purge()

	key := recordingKey(callID, recordingID)
	if existing, ok := s.recordings[key]; ok {
		if existing.entry.Status == recordingCompleted {
			return Claim{Status: ClaimCompleted, Reply: existing.entry.Reply}, nil
		}
		return Claim{Status: ClaimInFlight}, nil
	}
	s.recordings[key] = memoryRecording{
		entry:     recordingEntry{Status: recordingPending},
		expiresAt: s.now().Add(s.ttl),
	}
	return Claim{Status: ClaimAcquired}, nil
}

func (s *MemoryStore) CompleteRecording(_ context.Context, callID, recordingID, reply string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordings[recordingKey(callID, recordingID)] = memoryRecording{
		entry:     recordingEntry{Status: recordingCompleted, Reply: reply},
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) ReleaseRecording(_ context.Context, callID, recordingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recordings, recordingKey(callID, recordingID))
	return nil
}

// purge drops expired entries. Callers hold s.mu.
func (s *MemoryStore) purge() {
	now := s.now()
	for k, v := range s.calls {
		if now.After(v.expiresAt) {
			delete(s.calls, k)
		}
	}
	for k, v := range s.recordings {
		if now.After(v.expiresAt) {
			delete(s.recordings, k)
		}
	}
}

func recordingKey(callID, recordingID string) string {
	return callID + ":" + recordingID
}
