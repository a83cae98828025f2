package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want float64
	}{
		{"PT5M12S", 312},
		{"PT1H", 3600},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT0S", 0},
	}
	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			got, err := ParseDuration(tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, iso := range []string{"", "5M12S", "P1D", "PT5X"} {
		_, err := ParseDuration(iso)
		assert.Error(t, err, iso)
	}
}
