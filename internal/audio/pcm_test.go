package audio

import (
	"bytes"
	"testing"
)

func TestInt16SliceToBytes(t *testing.T) {
	input := []int16{0, 1, -1, 32767, -32768}
	expected := []byte{
		0x00, 0x00,
		0x01, 0x00,
		0xFF, 0xFF,
		0xFF, 0x7F,
		0x00, 0x80,
	}
	got := Int16SliceToBytes(input)
	if !bytes.Equal(got, expected) {
		t.Errorf("Int16SliceToBytes() = %v, want %v", got, expected)
	}
}

func TestBytesToInt16Slice(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []int16
		wantErr bool
	}{
		{
			name:  "even length",
			input: []byte{0x00, 0x00, 0x00, 0x80},
			want:  []int16{0, -32768},
		},
		{
			name:    "odd length",
			input:   []byte{0x00, 0x00, 0x01},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BytesToInt16Slice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BytesToInt16Slice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPCMRoundTrip(t *testing.T) {
	samples := []int16{0, 100, -100, 12345, -12345}
	decoded, err := BytesToInt16Slice(Int16SliceToBytes(samples))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(decoded))
	}
	for i := range samples {
		if decoded[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, decoded[i], samples[i])
		}
	}
}
