package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsMemberStore struct {
	active int64
}

func (s stubStatsMemberStore) CountActiveMembers(_ context.Context) (int64, error) {
	return s.active, nil
}

type stubStatsEventStore struct {
	total, thisYear int64
}

func (s stubStatsEventStore) CountEventsSince(_ context.Context, since time.Time) (int64, error) {
	if since.IsZero() {
		return s.total, nil
	}
	return s.thisYear, nil
}

func TestGetStatistics(t *testing.T) {
	svc := NewStatisticsService(
		stubStatsMemberStore{active: 87},
		stubStatsEventStore{total: 40, thisYear: 12},
	)

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(87), stats.ActiveMembers)
	assert.Equal(t, int64(12), stats.EventsThisYear)
	// A tenth of the membership, rounded down
	assert.Equal(t, int64(8), stats.SuccessStories)
	assert.Equal(t, time.Now().Year()-FoundingYear, stats.YearsEstablished)
}

func TestGetStatistics_SuccessStoriesFloor(t *testing.T) {
	svc := NewStatisticsService(
		stubStatsMemberStore{active: 12},
		stubStatsEventStore{total: 3, thisYear: 1},
	)

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(MinSuccessStories), stats.SuccessStories)
}
