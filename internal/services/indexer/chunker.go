// File: internal/services/indexer/chunker.go
package indexer

import "strings"

const (
	// Chunk geometry must stay stable across reindex runs: retrieval
	// quality was tuned against these values.
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
)

// SplitText cuts text into chunks of at most size runes, overlapping by
// roughly overlap runes. Cuts prefer sentence ends, then word boundaries,
// and only fall back to a hard cut for unbroken runs.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}

	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{string(runes)}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			chunk := strings.TrimSpace(string(runes[start:]))
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := findCut(runes, start, end)
		chunk := strings.TrimSpace(string(runes[start:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}

// findCut looks backwards from end for a sentence end, then a space. The
// search window is bounded so a pathological page cannot collapse a chunk
// to nothing.
func findCut(runes []rune, start, end int) int {
	minCut := start + (end-start)/2

	for i := end; i > minCut; i-- {
		if runes[i-1] == '.' || runes[i-1] == '\n' {
			return i
		}
	}
	for i := end; i > minCut; i-- {
		if runes[i-1] == ' ' {
			return i
		}
	}
	return end
}
