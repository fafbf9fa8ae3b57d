// Package chunker splits raw text into overlapping word windows for
// embedding and retrieval.
package chunker

import "strings"

const (
	DefaultSize    = 1000
	DefaultOverlap = 200
)

// Split cuts text into windows of size words with the given overlap
// between consecutive windows. The stride is clamped to at least one
// word so a misconfigured overlap cannot loop forever. Empty input
// yields nil. Pure function.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 {
		overlap = 0
	}
	stride := size - overlap
	if stride < 1 {
		stride = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += stride {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.TrimSpace(strings.Join(words[start:end], " "))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(words) {
			break
		}
	}
	return chunks
}
