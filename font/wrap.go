package font

import "strings"

// WrapText breaks s into lines no wider than maxWidth when drawn with a.
// Lines break at spaces; a single word wider than maxWidth is split
// between characters. Existing newlines are kept as line breaks.
func WrapText(a *Atlas, s string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{s}
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		wrapped := wrapByWord(a, para, maxWidth)
		if len(wrapped) == 0 {
			// Keep blank lines.
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// wrapByWord wraps text at word boundaries.
func wrapByWord(a *Atlas, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		if a.MeasureText(word).X > maxWidth {
			// Word alone is too long, split it by character.
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			parts := wrapByChar(a, word, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
			continue
		}

		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if a.MeasureText(testLine).X > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// wrapByChar wraps text at character boundaries.
func wrapByChar(a *Atlas, text string, maxWidth float32) []string {
	var lines []string
	var currentLine []rune
	var width float32

	for _, r := range text {
		adv := a.AdvanceX(r)
		if width+adv > maxWidth && len(currentLine) > 0 {
			lines = append(lines, string(currentLine))
			currentLine = currentLine[:0]
			width = 0
		}
		currentLine = append(currentLine, r)
		width += adv
	}

	if len(currentLine) > 0 {
		lines = append(lines, string(currentLine))
	}

	return lines
}

// TruncateText shortens s to fit maxWidth, ending it with "..".
func TruncateText(a *Atlas, s string, maxWidth float32) string {
	if a.MeasureText(s).X <= maxWidth {
		return s
	}

	const suffix = ".."
	target := maxWidth - a.MeasureText(suffix).X
	runes := []rune(s)
	for len(runes) > 0 {
		if a.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}

	return suffix
}
