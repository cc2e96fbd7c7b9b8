package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"voxrace/internal/config"
)

// Groq transcribes through Groq Cloud's OpenAI-compatible audio endpoint.
type Groq struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewGroq(cfg config.GroqConfig) *Groq {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.TimeoutMS > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}
	}
	return &Groq{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (g *Groq) Name() string {
	return "Groq Cloud (" + g.model + ")"
}

func (g *Groq) Transcribe(ctx context.Context, wavData []byte) (Result, error) {
	if strings.TrimSpace(g.apiKey) == "" {
		return Result{}, errors.New("groq api key is not set")
	}
	if len(wavData) == 0 {
		return Result{}, errors.New("no audio data to transcribe")
	}

	req := openai.AudioRequest{
		Model:    g.model,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(wavData),
		Format:   openai.AudioResponseFormatJSON,
	}

	start := time.Now()
	resp, err := g.client.CreateTranscription(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return Result{Elapsed: elapsed}, fmt.Errorf("groq transcription: %w", err)
	}
	return Result{Text: strings.TrimSpace(resp.Text), Elapsed: elapsed}, nil
}
