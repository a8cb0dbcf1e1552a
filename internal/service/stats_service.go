package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/repository"
)

const (
	statsCacheKey   = "platform"
	summaryCacheKey = "summary"
)

// StatsService aggregates admin dashboard figures.
type StatsService struct {
	stats  repository.StatsRepository
	cache  repository.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsService builds the service. A nil cache or zero ttl disables caching.
func NewStatsService(stats repository.StatsRepository, cache repository.Cache, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{stats: stats, cache: cache, ttl: ttl, logger: nopIfNil(logger)}
}

// PlatformStats returns global counters.
func (s *StatsService) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	var stats domain.PlatformStats
	if s.fromCache(ctx, statsCacheKey, &stats) {
		return &stats, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.stats.CountUsers(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalCourses, err = s.stats.CountCourses(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalEnrollments, err = s.stats.CountEnrollments(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalRevenue, err = s.stats.TotalRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.toCache(ctx, statsCacheKey, stats)
	return &stats, nil
}

// PlatformSummary splits the user base by role.
func (s *StatsService) PlatformSummary(ctx context.Context) (*domain.PlatformSummary, error) {
	var summary domain.PlatformSummary
	if s.fromCache(ctx, summaryCacheKey, &summary) {
		return &summary, nil
	}

	student, teacher := domain.RoleStudent, domain.RoleTeacher
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.TotalStudents, err = s.stats.CountUsers(gctx, &student)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalTeachers, err = s.stats.CountUsers(gctx, &teacher)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalCourses, err = s.stats.CountCourses(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalRevenue, err = s.stats.TotalRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.toCache(ctx, summaryCacheKey, summary)
	return &summary, nil
}

func (s *StatsService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil || s.ttl <= 0 {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *StatsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}
