package form

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Achievement order hints are clamped into [MinOrder, MaxOrder].
const (
	MinOrder = -2
	MaxOrder = 2
)

// SplitList splits a comma-separated field, trimming entries and dropping
// empty ones.
func SplitList(raw string) []string {
	return split(raw, ",")
}

// SplitLines splits a newline-separated field the same way.
func SplitLines(raw string) []string {
	return split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

func split(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeSummary trims the summary and makes it end with exactly one period.
func NormalizeSummary(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".") + "."
}

func ClampOrder(n int) int {
	return max(MinOrder, min(MaxOrder, n))
}

// ParseOrder reads a numeric order hint. Blank means 0; fractions truncate
// toward zero before clamping.
func ParseOrder(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("order %q is not a number", raw)
	}
	f = math.Trunc(f)
	switch {
	case f < MinOrder:
		return MinOrder, nil
	case f > MaxOrder:
		return MaxOrder, nil
	}
	return ClampOrder(int(f)), nil
}

// ParseHighlights decodes a JSON array of {"id", "comment"} objects into
// parallel id and comment slices. A blank field means no highlights.
// Entries whose id is not a positive integer that fits the INTEGER column
// are dropped along with their comment. On malformed input both slices are
// empty and the decode error is returned for logging.
func ParseHighlights(raw string) ([]int64, []string, error) {
	ids := []int64{}
	comments := []string{}

	if strings.TrimSpace(raw) == "" {
		return ids, comments, nil
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return ids, comments, err
	}

	for _, item := range items {
		n, ok := item["id"].(float64)
		if !ok || n != math.Trunc(n) || n < 1 || n > math.MaxInt32 {
			continue
		}
		comment, _ := item["comment"].(string)
		ids = append(ids, int64(n))
		comments = append(comments, comment)
	}
	return ids, comments, nil
}
