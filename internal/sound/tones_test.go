package sound

import (
	"encoding/binary"
	"testing"
)

func TestPCMLength(t *testing.T) {
	tests := []struct {
		chime Chime
		stars int
		ms    int
	}{
		{ChimeStep, 0, 90},
		{ChimeCheer, 0, 160},
		{ChimeReward, 1, 140 + 260},
		{ChimeReward, 3, 3*140 + 260},
		{ChimeReward, 0, 140 + 260},
		{ChimeReward, 9, 3*140 + 260},
	}
	for _, tt := range tests {
		got := len(PCM(tt.chime, tt.stars))
		want := tt.ms * SampleRate / 1000 * 2
		if got != want {
			t.Errorf("PCM(%s, %d) = %d bytes, want %d", tt.chime, tt.stars, got, want)
		}
	}
}

func TestPCMFadesIn(t *testing.T) {
	pcm := PCM(ChimeStep, 0)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	if first != 0 {
		t.Fatalf("first sample = %d, want 0", first)
	}

	var peak int16
	for i := 0; i < len(pcm); i += 2 {
		v := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		t.Fatal("expected audible samples")
	}
}

func TestUnknownChimeIsSilent(t *testing.T) {
	if got := PCM(Chime(42), 0); len(got) != 0 {
		t.Fatalf("expected no samples, got %d bytes", len(got))
	}
	if Chime(42).String() != "unknown" {
		t.Fatalf("String() = %q", Chime(42).String())
	}
}
