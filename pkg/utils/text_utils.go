package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText breaks textStr into lines no wider than maxWidth when drawn
// with face. Lines break between words; a single word wider than
// maxWidth is split between characters.
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if MeasureTextWidth(testLine, face) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}
		if MeasureTextWidth(word, face) <= maxWidth {
			currentLine = word
			continue
		}

		// overlong word: split by character
		for len(word) > 0 {
			_, size := utf8.DecodeRuneInString(word)
			testLine := currentLine + word[:size]
			if currentLine != "" && MeasureTextWidth(testLine, face) > maxWidth {
				lines = append(lines, currentLine)
				currentLine = ""
				continue
			}
			currentLine = testLine
			word = word[size:]
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// MeasureTextWidth returns the drawn width of textStr in face.
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
