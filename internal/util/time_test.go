package util //nolint:revive // package name util hosts shared helpers used across handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCMidnight(t *testing.T) {
	t.Parallel()

	colombo := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "afternoon utc",
			in:   time.Date(2026, 9, 12, 15, 30, 45, 999, time.UTC),
			want: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight",
			in:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local zone crossing the date line",
			in:   time.Date(2026, 9, 12, 2, 0, 0, 0, colombo), // 2026-09-11 20:30 UTC
			want: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UTCMidnight(tt.in))
		})
	}
}
