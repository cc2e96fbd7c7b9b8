package provider

import (
	"context"
	"time"
)

// Static is a canned transcriber for tests and offline development.
type Static struct {
	Label string
	Text  string
	Delay time.Duration
	Err   error
}

func (s *Static) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "static"
}

func (s *Static) Transcribe(ctx context.Context, _ []byte) (Result, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	if s.Err != nil {
		return Result{Elapsed: s.Delay}, s.Err
	}
	return Result{Text: s.Text, Elapsed: s.Delay}, nil
}
