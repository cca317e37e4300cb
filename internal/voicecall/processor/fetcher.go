package processor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxAudioBytes matches the transcription upload limit.
const maxAudioBytes = 25 << 20

// HTTPAudioFetcher downloads recordings with a single GET and no retry.
type HTTPAudioFetcher struct {
	client *http.Client
}

func NewHTTPAudioFetcher(timeout time.Duration) *HTTPAudioFetcher {
	return &HTTPAudioFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPAudioFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build audio request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch audio: unexpected status %d", resp.StatusCode)
	}
	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) > maxAudioBytes {
		return nil, fmt.Errorf("audio exceeds %d bytes", maxAudioBytes)
	}
	return audio, nil
}
