package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp converts a suffixed backend timestamp such as "1.200s"
// into seconds. Kept separate from the normalizer so an alternate backend
// format only needs a new parse function.
func ParseTimestamp(ts string) (float64, error) {
	trimmed := strings.TrimSpace(ts)
	trimmed = strings.TrimSuffix(trimmed, "s")

	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, ts)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings, which are never valid
	// playback times
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParse, ts)
	}

	return seconds, nil
}
