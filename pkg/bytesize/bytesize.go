// Package bytesize converts between byte counts and human-friendly sizes
// such as "512MB" or "1.5GB". Units are 1024-based.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	B  int64 = 1
	KB       = B << 10
	MB       = KB << 10
	GB       = MB << 10
	TB       = GB << 10
)

var units = []struct {
	suffix string
	size   int64
}{
	{"TB", TB},
	{"GB", GB},
	{"MB", MB},
	{"KB", KB},
	{"B", B},
}

// Parse parses a size string. A bare integer is a byte count; otherwise
// the value must carry one of the B, KB, MB, GB or TB suffixes (any case).
func Parse(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid size %q: negative", s)
		}
		return n, nil
	}

	for _, u := range units {
		num, ok := strings.CutSuffix(s, u.suffix)
		if !ok {
			continue
		}
		num = strings.TrimSpace(num)
		if num == "" {
			return 0, fmt.Errorf("invalid size %q: missing value", s)
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid size %q", s)
		}
		if v < 0 {
			return 0, fmt.Errorf("invalid size %q: negative", s)
		}
		bytes := v * float64(u.size)
		if bytes >= math.MaxInt64 {
			return 0, fmt.Errorf("size %q overflows", s)
		}
		return int64(bytes), nil
	}
	return 0, fmt.Errorf("invalid size %q: unknown unit", s)
}

// Format renders n with the largest unit that keeps the value at or above 1,
// with at most one decimal.
func Format(n int64) string {
	if n < 0 {
		return "-" + Format(-n)
	}
	for _, u := range units {
		if n < u.size || u.size == B {
			continue
		}
		v := float64(n) / float64(u.size)
		if n%u.size == 0 {
			return strconv.FormatInt(n/u.size, 10) + u.suffix
		}
		return strconv.FormatFloat(v, 'f', 1, 64) + u.suffix
	}
	return strconv.FormatInt(n, 10) + "B"
}
