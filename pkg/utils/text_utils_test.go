package utils

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

func TestWrapText(t *testing.T) {
	// basicfont advances 7px per glyph
	face := text.NewGoXFace(basicfont.Face7x13)

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"fits", "hello there", 100, []string{"hello there"}},
		{"breaks between words", "one two three four", 70, []string{"one two", "three four"}},
		{"long word split", "abcdefghij", 28, []string{"abcd", "efgh", "ij"}},
		{"empty", "", 50, []string{""}},
		{"no width", "a b c", 0, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, face, tt.maxWidth)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("WrapText(%q, %v) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if tt.maxWidth <= 0 {
				return
			}
			for _, line := range got {
				if w := MeasureTextWidth(line, face); w > tt.maxWidth {
					t.Errorf("line %q is %vpx wide, over %v", line, w, tt.maxWidth)
				}
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)
	if w := MeasureTextWidth("abc", face); w != 21 {
		t.Errorf("width = %v, want 21", w)
	}
	if w := MeasureTextWidth("", face); w != 0 {
		t.Errorf("empty width = %v", w)
	}
}
