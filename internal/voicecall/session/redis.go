package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisClient "ialynk-server/internal/clients/redis"
)

const (
	callKeyPrefix      = "voicecall:session:"
	recordingKeyPrefix = "voicecall:recording:"
)

// KeyValue is the subset of the Redis client the store needs.
type KeyValue interface {
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// RedisStore shares sessions between replicas. Every key expires after ttl.
type RedisStore struct {
	kv  KeyValue
	ttl time.Duration
	now func() time.Time
}

func NewRedisStore(kv KeyValue, ttl time.Duration) *RedisStore {
	return &RedisStore{kv: kv, ttl: ttl, now: time.Now}
}

func (s *RedisStore) Start(ctx context.Context, callID, provider string) error {
	return s.put(ctx, Record{CallID: callID, Provider: provider, State: StateRinging, UpdatedAt: s.now()})
}

func (s *RedisStore) SetState(ctx context.Context, callID string, state State) error {
	rec, err := s.Get(ctx, callID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	rec.CallID = callID
	rec.State = state
	rec.UpdatedAt = s.now()
	return s.put(ctx, rec)
}

func (s *RedisStore) Get(ctx context.Context, callID string) (Record, error) {
	raw, err := s.kv.Get(ctx, callKeyPrefix+callID)
	if errors.Is(err, redisClient.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to get call session: %w", err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode call session: %w", err)
	}
	return rec, nil
}

func (s *RedisStore) ClaimRecording(ctx context.Context, callID, recordingID string) (Claim, error) {
	key := recordingKeyPrefix + recordingKey(callID, recordingID)
	pending, err := json.Marshal(recordingEntry{Status: recordingPending})
	if err != nil {
		return Claim{}, err
	}

	// A second attempt covers the key expiring between SETNX and GET.
	for attempt := 0; attempt < 2; attempt++ {
		acquired, err := s.kv.SetNX(ctx, key, pending, s.ttl)
		if err != nil {
			return Claim{}, fmt.Errorf("failed to claim recording: %w", err)
		}
		if acquired {
			return Claim{Status: ClaimAcquired}, nil
		}

		raw, err := s.kv.Get(ctx, key)
		if errors.Is(err, redisClient.Nil) {
			continue
		}
		if err != nil {
			return Claim{}, fmt.Errorf("failed to read recording claim: %w", err)
		}
		var entry recordingEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return Claim{}, fmt.Errorf("failed to decode recording claim: %w", err)
		}
		if entry.Status == recordingCompleted {
			return Claim{Status: ClaimCompleted, Reply: entry.Reply}, nil
		}
		return Claim{Status: ClaimInFlight}, nil
	}
	return Claim{Status: ClaimInFlight}, nil
}

func (s *RedisStore) CompleteRecording(ctx context.Context, callID, recordingID, reply string) error {
	payload, err := json.Marshal(recordingEntry{Status: recordingCompleted, Reply: reply})
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, recordingKeyPrefix+recordingKey(callID, recordingID), payload, s.ttl); err != nil {
		return fmt.Errorf("failed to store recording reply: %w", err)
	}
	return nil
}

func (s *RedisStore) ReleaseRecording(ctx context.Context, callID, recordingID string) error {
	if err := s.kv.Del(ctx, recordingKeyPrefix+recordingKey(callID, recordingID)); err != nil {
		return fmt.Errorf("failed to release recording claim: %w", err)
	}
	return nil
}

func (s *RedisStore) put(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, callKeyPrefix+rec.CallID, payload, s.ttl); err != nil {
		return fmt.Errorf("failed to store call session: %w", err)
	}
	return nil
}
