package main

import (
	"os"
	"strings"
)

// splitWords tokenizes text on Unicode whitespace.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// readCapped reads the file at path, truncated to at most maxChars
// characters. Truncation happens on a rune boundary.
func readCapped(path string, maxChars int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := string(data)
	count := 0

	for i := range text {
		if count == maxChars {
			return text[:i], nil
		}
		count++
	}

	return text, nil
}
