package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voxrace/internal/config"
)

// Deepgram transcribes through Deepgram's pre-recorded listen endpoint.
type Deepgram struct {
	apiKey   string
	endpoint string
	model    string
	language string
	client   *http.Client
}

// deepgramResponse mirrors the parts of the listen response we read:
// results.channels[0].alternatives[0].transcript.
type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

type deepgramError struct {
	ErrCode string `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

func NewDeepgram(cfg config.DeepgramConfig) *Deepgram {
	client := &http.Client{}
	if cfg.TimeoutMS > 0 {
		client.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &Deepgram{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		language: cfg.Language,
		client:   client,
	}
}

func (d *Deepgram) Name() string {
	return "Deepgram (" + d.model + ")"
}

func (d *Deepgram) Transcribe(ctx context.Context, wavData []byte) (Result, error) {
	if strings.TrimSpace(d.apiKey) == "" {
		return Result{}, errors.New("deepgram api key is not set")
	}
	if len(wavData) == 0 {
		return Result{}, errors.New("no audio data to transcribe")
	}

	endpoint, err := d.requestURL()
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(wavData))
	if err != nil {
		return Result{}, fmt.Errorf("build deepgram request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "audio/wav")

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return Result{Elapsed: time.Since(start)}, fmt.Errorf("deepgram request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("read deepgram response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr deepgramError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.ErrMsg != "" {
			return Result{Elapsed: elapsed}, fmt.Errorf("deepgram returned %s: %s", resp.Status, apiErr.ErrMsg)
		}
		return Result{Elapsed: elapsed}, fmt.Errorf("deepgram returned %s", resp.Status)
	}

	var decoded deepgramResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("parse deepgram response: %w", err)
	}

	var text string
	if chs := decoded.Results.Channels; len(chs) > 0 && len(chs[0].Alternatives) > 0 {
		text = chs[0].Alternatives[0].Transcript
	}
	return Result{Text: strings.TrimSpace(text), Elapsed: elapsed}, nil
}

func (d *Deepgram) requestURL() (string, error) {
	u, err := url.Parse(d.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid deepgram endpoint: %w", err)
	}
	q := u.Query()
	q.Set("model", d.model)
	if d.language != "" {
		q.Set("language", d.language)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
