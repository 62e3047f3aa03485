package domain

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf16"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		limit     int
		wantCount int
	}{
		{"empty", "", 10, 0},
		{"shorter than limit", "hello", 10, 1},
		{"exact limit", strings.Repeat("a", 10), 10, 1},
		{"one over", strings.Repeat("a", 11), 10, 2},
		{"three chunks", strings.Repeat("a", 25), 10, 3},
		{"multibyte runes", strings.Repeat("é", 25), 10, 3},
		{"surrogate pairs", strings.Repeat("😀", 10), 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := SplitText(tt.content, tt.limit)
			if len(segments) != tt.wantCount {
				t.Fatalf("got %d segments, expected %d", len(segments), tt.wantCount)
			}
			if strings.Join(segments, "") != tt.content {
				t.Error("segments do not reassemble to the original content")
			}
			for i, s := range segments {
				if n := len(utf16.Encode([]rune(s))); n > tt.limit {
					t.Errorf("segment %d has %d units, limit %d", i, n, tt.limit)
				}
			}
		})
	}
}

func TestBlockSegments(t *testing.T) {
	fits := strings.Repeat("x", MaxSegmentLength*MaxSegmentsPerBlock)
	segments, err := BlockSegments(fits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != MaxSegmentsPerBlock {
		t.Errorf("got %d segments, expected %d", len(segments), MaxSegmentsPerBlock)
	}

	_, err = BlockSegments(fits + "y")
	if !errors.Is(err, ErrContentTooLarge) {
		t.Errorf("expected ErrContentTooLarge, got %v", err)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText([]byte("plain")); got != "plain" {
		t.Errorf("NormalizeText(valid) = %q", got)
	}
	if got := NormalizeText([]byte{'a', 0xff, 'b'}); got != "a\uFFFDb" {
		t.Errorf("NormalizeText(invalid) = %q", got)
	}
}
