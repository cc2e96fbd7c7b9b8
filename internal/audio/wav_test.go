package audio

import (
	"os"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/google/uuid"
)

func testRecording(t *testing.T, frames int) Recording {
	t.Helper()
	pcm := make([]int16, frames)
	for i := range pcm {
		pcm[i] = int16(i % 4096)
	}
	return Recording{
		ID:         uuid.New(),
		PCM:        pcm,
		SampleRate: 16000,
		Channels:   1,
	}
}

func TestRecordingDuration(t *testing.T) {
	rec := testRecording(t, 16000)
	if rec.Duration() != time.Second {
		t.Fatalf("expected 1s, got %v", rec.Duration())
	}
	rec = testRecording(t, 8000)
	if rec.Duration() != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", rec.Duration())
	}
}

func TestWriteTempDurationMatchesTake(t *testing.T) {
	// a take of L frames yields a file whose duration is L/rate within
	// one frame
	for _, frames := range []int{1600, 16000, 44100} {
		rec := testRecording(t, frames)
		path, err := WriteTemp(rec)
		if err != nil {
			t.Fatalf("WriteTemp: %v", err)
		}
		defer os.Remove(path)

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open wav: %v", err)
		}
		dec := wav.NewDecoder(f)
		dur, err := dec.Duration()
		f.Close()
		if err != nil {
			t.Fatalf("decode duration: %v", err)
		}

		oneFrame := time.Second / time.Duration(rec.SampleRate)
		diff := dur - rec.Duration()
		if diff < 0 {
			diff = -diff
		}
		if diff > oneFrame {
			t.Errorf("frames=%d: duration %v, want %v within %v", frames, dur, rec.Duration(), oneFrame)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	rec := testRecording(t, 2048)
	path, err := WriteTemp(rec)
	if err != nil {
		t.Fatalf("WriteTemp: %v", err)
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open wav: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode pcm: %v", err)
	}
	if dec.SampleRate != 16000 {
		t.Fatalf("expected sample rate 16000, got %d", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Fatalf("expected mono, got %d channels", dec.NumChans)
	}
	if dec.BitDepth != 16 {
		t.Fatalf("expected 16-bit samples, got %d", dec.BitDepth)
	}
	if len(buf.Data) != len(rec.PCM) {
		t.Fatalf("expected %d samples, got %d", len(rec.PCM), len(buf.Data))
	}
	for i, want := range rec.PCM {
		if int16(buf.Data[i]) != want {
			t.Fatalf("sample %d = %d, want %d", i, buf.Data[i], want)
		}
	}
}

func TestEncodeRejectsInvalidFormat(t *testing.T) {
	rec := Recording{PCM: []int16{1, 2, 3}}
	if _, err := WriteTemp(rec); err == nil {
		t.Fatal("expected error for recording without format")
	}
}
