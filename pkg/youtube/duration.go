package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO-8601 video duration like "PT5M12S" to
// seconds.
func ParseDuration(iso string) (float64, error) {
	m := durationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0, fmt.Errorf("unparsable duration %q", iso)
	}

	var seconds float64
	for i, mult := range []float64{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("unparsable duration %q: %w", iso, err)
		}
		seconds += float64(n) * mult
	}
	return seconds, nil
}
