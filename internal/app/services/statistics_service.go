package services

import (
	"context"
	"time"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// FoundingYear is when the association was established
const FoundingYear = 2010

// MinSuccessStories is the floor shown when the estimate is lower
const MinSuccessStories = 5

// StatisticsService computes the public landing page counters
type StatisticsService interface {
	GetStatistics(ctx context.Context) (*dto.Statistics, error)
}

// statisticsMemberStore is the member slice of persistence this service reads
type statisticsMemberStore interface {
	CountActiveMembers(ctx context.Context) (int64, error)
}

// statisticsEventStore is the event slice of persistence this service reads
type statisticsEventStore interface {
	CountEventsSince(ctx context.Context, since time.Time) (int64, error)
}

// statisticsServiceImpl implements the StatisticsService interface
type statisticsServiceImpl struct {
	memberRepo statisticsMemberStore
	eventRepo  statisticsEventStore
}

// NewStatisticsService creates a new statistics service instance
func NewStatisticsService(memberRepo statisticsMemberStore, eventRepo statisticsEventStore) StatisticsService {
	return &statisticsServiceImpl{
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
	}
}

// GetStatistics aggregates the landing page counters. Success stories are
// estimated as a tenth of the active membership, never below the floor.
func (s *statisticsServiceImpl) GetStatistics(ctx context.Context) (*dto.Statistics, error) {
	now := time.Now()

	activeMembers, err := s.memberRepo.CountActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	eventsThisYear, err := s.eventRepo.CountEventsSince(ctx, yearStart)
	if err != nil {
		return nil, err
	}

	successStories := activeMembers / 10
	if successStories < MinSuccessStories {
		successStories = MinSuccessStories
	}

	stats := &dto.Statistics{
		ActiveMembers:    activeMembers,
		EventsThisYear:   eventsThisYear,
		YearsEstablished: now.Year() - FoundingYear,
		SuccessStories:   successStories,
	}

	logger.Debug().Int64("activeMembers", activeMembers).Int64("eventsThisYear", eventsThisYear).Msg("Statistics computed")
	return stats, nil
}
