package utils_test

import (
	"testing"
	"time"

	"library-backend/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestOverdueDays(t *testing.T) {
	expected := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		actual time.Time
		want   int32
	}{
		{"EarlyReturn", expected.Add(-48 * time.Hour), 0},
		{"ExactlyOnTime", expected, 0},
		{"OneSecondLate", expected.Add(time.Second), 1},
		{"JustUnderOneDay", expected.Add(24*time.Hour - time.Second), 1},
		{"ExactlyOneDay", expected.Add(24 * time.Hour), 1},
		{"OneDayAndOneHour", expected.Add(25 * time.Hour), 2},
		{"TenDays", expected.Add(240 * time.Hour), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.OverdueDays(expected, tt.actual))
		})
	}
}

func TestFineAmountCents(t *testing.T) {
	assert.Equal(t, int64(150), utils.FineAmountCents(3, 50))
	assert.Equal(t, int64(0), utils.FineAmountCents(0, 50))
	assert.Equal(t, int64(0), utils.FineAmountCents(-1, 50))
	assert.Equal(t, int64(0), utils.FineAmountCents(3, 0))
}

func TestExpectedReturnDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 17, 45, 3, 0, time.UTC)
	got := utils.ExpectedReturnDate(now, 14)
	assert.Equal(t, time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC), got)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 10, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), utils.Midnight(in))
}
