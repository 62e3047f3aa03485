package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limits the page service places on a single preformatted block
const (
	MaxSegmentLength    = 2000 // UTF-16 code units per rich-text segment
	MaxSegmentsPerBlock = 100
)

// ErrContentTooLarge is returned when content does not fit in one block
var ErrContentTooLarge = errors.New("content too large for a single block")

// SplitText cuts content into consecutive segments of at most limit UTF-16
// code units each. Runes are never split. Empty content yields no segments.
func SplitText(content string, limit int) []string {
	if content == "" || limit <= 0 {
		return nil
	}

	var segments []string
	start, units := 0, 0
	for i, r := range content {
		n := 1
		if r > 0xFFFF {
			n = 2
		}
		if units+n > limit && i > start {
			segments = append(segments, content[start:i])
			start, units = i, 0
		}
		units += n
	}
	return append(segments, content[start:])
}

// BlockSegments splits content for a single preformatted block, failing with
// ErrContentTooLarge when it needs more than MaxSegmentsPerBlock segments.
func BlockSegments(content string) ([]string, error) {
	segments := SplitText(content, MaxSegmentLength)
	if len(segments) > MaxSegmentsPerBlock {
		return nil, fmt.Errorf("%w: %d segments (max %d)", ErrContentTooLarge, len(segments), MaxSegmentsPerBlock)
	}
	return segments, nil
}

// NormalizeText replaces invalid UTF-8 sequences with U+FFFD
func NormalizeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
