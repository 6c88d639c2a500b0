package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -2)
	endPast := now.AddDate(0, 0, -1)
	endFuture := now.AddDate(0, 0, 5)

	cases := []struct {
		name string
		c    Campaign
		want CampaignStatus
	}{
		{"pending stays pending", Campaign{Status: StatusPending}, StatusPending},
		{"rejected stays rejected", Campaign{Status: StatusRejected}, StatusRejected},
		{"active before end stays active", Campaign{Status: StatusActive, StartAt: &start, EndAt: &endFuture}, StatusActive},
		{"active past end reads expired", Campaign{Status: StatusActive, StartAt: &start, EndAt: &endPast}, StatusExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stored := tc.c.Status
			require.Equal(t, tc.want, tc.c.EffectiveStatus(now))
			// derivation must not mutate the persisted status
			require.Equal(t, stored, tc.c.Status)
		})
	}
}

func TestLive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	live := Campaign{ID: uuid.New(), Status: StatusActive, EndAt: &end}
	require.True(t, live.Live(now))

	overrun := Campaign{ID: uuid.New(), Status: StatusActive, EndAt: &past}
	require.False(t, overrun.Live(now))

	pending := Campaign{ID: uuid.New(), Status: StatusPending}
	require.False(t, pending.Live(now))
}
