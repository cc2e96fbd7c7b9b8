package audio

import "fmt"

// Int16SliceToBytes packs samples as little-endian 16-bit PCM.
func Int16SliceToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		data[i*2] = byte(s)
		data[i*2+1] = byte(s >> 8)
	}
	return data
}

// BytesToInt16Slice unpacks little-endian 16-bit PCM samples.
func BytesToInt16Slice(data []byte) ([]int16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("data length must be even for 16-bit audio")
	}
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(data[i*2]) | int16(data[i*2+1])<<8
	}
	return samples, nil
}
