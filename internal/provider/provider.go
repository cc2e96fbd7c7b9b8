// Package provider holds the speech-to-text backends the app races
// against each other and the concurrent dispatcher that feeds one
// recording to all of them.
package provider

import (
	"context"
	"sync"
	"time"
)

// Result captures one backend's answer for a recording.
type Result struct {
	Text    string
	Elapsed time.Duration
}

// Transcriber abstracts a speech-to-text backend.
type Transcriber interface {
	Name() string
	Transcribe(ctx context.Context, wavData []byte) (Result, error)
}

// Outcome pairs a backend with its result or failure.
type Outcome struct {
	Name   string
	Result Result
	Err    error
}

// Dispatch feeds the same WAV payload to every transcriber concurrently.
// The calls are independent and unordered; a failure in one never affects
// the others. Outcomes are handed to deliver (may be nil) as each call
// finishes and returned in argument order once all are done.
func Dispatch(ctx context.Context, wavData []byte, deliver func(Outcome), transcribers ...Transcriber) []Outcome {
	outcomes := make([]Outcome, len(transcribers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i, tr := range transcribers {
		wg.Add(1)
		go func(i int, tr Transcriber) {
			defer wg.Done()
			result, err := tr.Transcribe(ctx, wavData)
			outcome := Outcome{Name: tr.Name(), Result: result, Err: err}
			outcomes[i] = outcome
			if deliver != nil {
				mu.Lock()
				deliver(outcome)
				mu.Unlock()
			}
		}(i, tr)
	}
	wg.Wait()

	return outcomes
}
