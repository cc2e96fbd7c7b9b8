package audio

import (
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM, uncompressed
const wavAudioFormat = 1

// Encode writes the recording as a 16-bit PCM WAV container.
func Encode(ws io.WriteSeeker, rec Recording) error {
	if rec.SampleRate <= 0 || rec.Channels <= 0 {
		return fmt.Errorf("recording has no valid format (rate=%d channels=%d)", rec.SampleRate, rec.Channels)
	}

	enc := wav.NewEncoder(ws, rec.SampleRate, 16, rec.Channels, wavAudioFormat)
	data := make([]int, len(rec.PCM))
	for i, s := range rec.PCM {
		data[i] = int(s)
	}
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: rec.Channels,
			SampleRate:  rec.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteFile encodes the recording into the named WAV file.
func WriteFile(path string, rec Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTemp encodes the recording into a temporary WAV file and returns
// its path. The caller removes the file once it is done with it.
func WriteTemp(rec Recording) (string, error) {
	f, err := os.CreateTemp("", "voxrace-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp wav file: %w", err)
	}
	path := f.Name()
	if err := Encode(f, rec); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
