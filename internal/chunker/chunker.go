// Package chunker splits raw text into overlapping fixed-size segments for
// embedding. Splitting is recursive: paragraph breaks are preferred over line
// breaks, line breaks over sentence ends, sentence ends over word boundaries,
// with a hard character cut as the last resort.
package chunker

import "strings"

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
)

// defaultSeparators are tried in order; the empty string is the hard cut.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter produces ordered, overlapping chunks from raw text. The separator
// stays attached to the piece it terminates, so chunks are not trimmed and
// concatenating them with overlaps removed reconstructs the input exactly.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 10
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   defaultSeparators,
	}
}

// Split returns the chunk sequence for text. Same input, same output.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	sep := separators[len(separators)-1]
	rest := []string{}
	for i, cand := range separators {
		if cand == "" || strings.Contains(text, cand) {
			sep = cand
			rest = separators[i+1:]
			break
		}
	}

	pieces := splitKeepSeparator(text, sep)

	var chunks []string
	var pending []string
	for _, p := range pieces {
		if len(p) <= s.chunkSize {
			pending = append(pending, p)
			continue
		}
		if len(pending) > 0 {
			chunks = append(chunks, s.merge(pending)...)
			pending = nil
		}
		if len(rest) == 0 {
			// Unsplittable atom larger than the chunk size.
			chunks = append(chunks, p)
			continue
		}
		chunks = append(chunks, s.split(p, rest)...)
	}
	if len(pending) > 0 {
		chunks = append(chunks, s.merge(pending)...)
	}
	return chunks
}

// merge greedily packs pieces into chunks of at most chunkSize bytes. When a
// chunk is emitted, trailing pieces totalling at most chunkOverlap bytes are
// carried over as the start of the next chunk.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string
	var window []string
	winLen := 0

	for _, p := range pieces {
		if winLen > 0 && winLen+len(p) > s.chunkSize {
			chunks = append(chunks, strings.Join(window, ""))
			for len(window) > 0 && (winLen > s.chunkOverlap || winLen+len(p) > s.chunkSize) {
				winLen -= len(window[0])
				window = window[1:]
			}
		}
		window = append(window, p)
		winLen += len(p)
	}
	if len(window) > 0 {
		chunks = append(chunks, strings.Join(window, ""))
	}
	return chunks
}

// splitKeepSeparator splits text so that the concatenation of the returned
// pieces equals text. An empty separator splits into individual runes.
func splitKeepSeparator(text, sep string) []string {
	if sep == "" {
		pieces := make([]string, 0, len(text))
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
		return pieces
	}

	parts := strings.SplitAfter(text, sep)
	pieces := parts[:0]
	for _, p := range parts {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
