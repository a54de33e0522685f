package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reassemble rebuilds the original text by stripping the shared overlap
// between consecutive chunks. Test inputs use unique sentence content so the
// longest suffix/prefix match is the real overlap.
func reassemble(chunks []string) string {
	if len(chunks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(chunks[0])
	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		limit := len(prev)
		if len(cur) < limit {
			limit = len(cur)
		}
		overlap := 0
		for n := limit; n > 0; n-- {
			if strings.HasSuffix(prev, cur[:n]) {
				overlap = n
				break
			}
		}
		b.WriteString(cur[overlap:])
	}
	return b.String()
}

func uniqueSentences(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "Sentence number %03d covers one distinct machining topic. ", i)
	}
	return strings.TrimSuffix(sb.String(), " ")
}

func TestSplitReconstructsInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"sentences", uniqueSentences(120)},
		{
			"paragraphs",
			"First paragraph about workholding basics.\n\nSecond paragraph about spindle speeds and feeds.\n\nThird paragraph about tool wear inspection intervals.",
		},
		{"short", "A single short line."},
		{"trailing newlines", "Body text here.\n\n\n"},
	}

	s := New(200, 40)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := s.Split(tt.text)
			require.NotEmpty(t, chunks)
			assert.Equal(t, tt.text, reassemble(chunks))
		})
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	texts := []string{
		uniqueSentences(200),
		strings.Repeat("abcdefghij", 250), // no separators at all, hard cut
		strings.Repeat("word ", 1000),
	}

	s := New(1000, 100)
	for _, text := range texts {
		for i, chunk := range s.Split(text) {
			assert.LessOrEqualf(t, len(chunk), 1000, "chunk %d exceeds chunk size", i)
		}
	}
}

func TestSplitHardCutCoversWholeInput(t *testing.T) {
	text := strings.Repeat("0123456789", 300)

	s := New(1000, 100)
	chunks := s.Split(text)

	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasPrefix(text, chunks[0]))
	assert.True(t, strings.HasSuffix(text, chunks[len(chunks)-1]))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 1000)
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	text := "para one.\n\npara two.\n\npara three."

	s := New(12, 0)
	chunks := s.Split(text)

	assert.Equal(t, []string{"para one.\n\n", "para two.\n\n", "para three."}, chunks)
}

func TestSplitOverlapsConsecutiveChunks(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "w%02d ", i)
	}

	s := New(20, 8)
	chunks := s.Split(sb.String())
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		overlap := 0
		limit := min(len(prev), len(cur))
		for n := limit; n > 0; n-- {
			if strings.HasSuffix(prev, cur[:n]) {
				overlap = n
				break
			}
		}
		assert.Greaterf(t, overlap, 0, "chunks %d and %d do not overlap", i-1, i)
		assert.LessOrEqual(t, overlap, 8)
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := uniqueSentences(80)
	s := New(300, 50)

	first := s.Split(text)
	second := s.Split(text)

	assert.Equal(t, first, second)
}

func TestSplitEmptyInput(t *testing.T) {
	s := New(1000, 100)
	assert.Nil(t, s.Split(""))
}

func TestNewGuardsBadParameters(t *testing.T) {
	s := New(0, -5)
	assert.Equal(t, DefaultChunkSize, s.chunkSize)
	assert.Equal(t, 0, s.chunkOverlap)

	s = New(100, 100)
	assert.Equal(t, 10, s.chunkOverlap)
}
