package audio

import (
	"time"

	"github.com/google/uuid"
)

// Recording holds the samples captured between one key-down and key-up.
// It is transient: the caller discards it once both transcripts rendered.
type Recording struct {
	ID         uuid.UUID
	PCM        []int16
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames across all channels.
func (r Recording) Frames() int {
	if r.Channels <= 0 {
		return 0
	}
	return len(r.PCM) / r.Channels
}

// Duration derives the wall-clock length of the take from its frame count.
func (r Recording) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}
	return time.Duration(r.Frames()) * time.Second / time.Duration(r.SampleRate)
}
