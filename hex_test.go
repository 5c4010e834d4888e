package tint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHexInt(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
		want RGBA
	}{
		{name: "red", hex: 0xFF0000, want: RGBA{1, 0, 0, 1}},
		{name: "green", hex: 0x00FF00, want: RGBA{0, 1, 0, 1}},
		{name: "blue", hex: 0x0000FF, want: RGBA{0, 0, 1, 1}},
		{name: "white", hex: 0xFFFFFF, want: RGBA{1, 1, 1, 1}},
		{name: "black", hex: 0x000000, want: RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexInt(tt.hex)
			if diffStr := cmp.Diff(tt.want, got); diffStr != "" {
				t.Errorf("HexInt(%#06x) mismatch (-want +got):\n%s", tt.hex, diffStr)
			}
		})
	}
}

func TestHexInt_MatchesRGB255(t *testing.T) {
	if HexInt(0xFF0000) != RGB255(255, 0, 0) {
		t.Error("HexInt(0xFF0000) should equal RGB255(255, 0, 0)")
	}
	if HexIntA(0x123456, 0.25) != RGB255A(0x12, 0x34, 0x56, 0.25) {
		t.Error("HexIntA should decompose into RGB255A channels")
	}
}

func TestHexIntA_IgnoresHighBits(t *testing.T) {
	if HexIntA(0xFF00FF00, 1) != HexIntA(0x00FF00, 1) {
		t.Error("bits above the low 24 should be ignored")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
	}{
		{name: "green with prefix", input: "#00FF00", want: RGBA{0, 1, 0, 1}},
		{name: "green without prefix", input: "00FF00", want: RGBA{0, 1, 0, 1}},
		{name: "lowercase", input: "#00ff00", want: RGBA{0, 1, 0, 1}},
		{name: "mixed case", input: "#00Ff00", want: RGBA{0, 1, 0, 1}},
		{name: "invalid digits fall back to black", input: "ZZZZZZ", want: RGBA{0, 0, 0, 1}},
		{name: "too short falls back to black", input: "12345", want: RGBA{0, 0, 0, 1}},
		{name: "too long falls back to black", input: "#1234567", want: RGBA{0, 0, 0, 1}},
		{name: "empty falls back to black", input: "", want: RGBA{0, 0, 0, 1}},
		{name: "prefix without digits falls back to black", input: "#12345", want: RGBA{0, 0, 0, 1}},
		{name: "seven digits no prefix falls back to black", input: "1234567", want: RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.input)
			if diffStr := cmp.Diff(tt.want, got); diffStr != "" {
				t.Errorf("Hex(%q) mismatch (-want +got):\n%s", tt.input, diffStr)
			}
		})
	}
}

func TestHexA_FallbackKeepsAlpha(t *testing.T) {
	// The silent fallback produces black with the caller's alpha, not
	// fully transparent black.
	got := HexA("not-a-color", 0.5)
	want := RGBA{0, 0, 0, 0.5}
	if got != want {
		t.Errorf("HexA(invalid, 0.5) = %v, want %v", got, want)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#3498db")
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v, want nil", "#3498db", err)
	}
	want := RGB255(0x34, 0x98, 0xdb)
	if got != want {
		t.Errorf("ParseHex(%q) = %v, want %v", "#3498db", got, want)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "12345", "ZZZZZZ", "#1234567", "1234567", "#gggggg"} {
		got, err := ParseHex(input)
		if !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", input, err)
		}
		if got != (RGBA{}) {
			t.Errorf("ParseHex(%q) = %v, want zero value on error", input, got)
		}
	}
}

func TestHex_AgreesWithParseHex(t *testing.T) {
	for _, input := range []string{"#000000", "#FFFFFF", "3498db", "#AbCdEf"} {
		strict, err := ParseHex(input)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", input, err)
		}
		if lenient := Hex(input); lenient != strict {
			t.Errorf("Hex(%q) = %v, ParseHex = %v", input, lenient, strict)
		}
	}
}
