package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"quantumdb-backend/internal/domains/stats"
	"quantumdb-backend/pkg/cache"
)

type statsService struct {
	repo  stats.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewStatsService(repo stats.Repository, c cache.Cache, ttl time.Duration) stats.Service {
	return &statsService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

func (s *statsService) GetAuthorStats(ctx context.Context, authorID uuid.UUID) (*stats.AuthorStats, error) {
	key := fmt.Sprintf("stats:author:%s", authorID)

	var cached stats.AuthorStats
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	} else if found {
		return &cached, nil
	}

	result, err := s.repo.GetAuthorStats(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
	return result, nil
}

func (s *statsService) GetConferenceStats(ctx context.Context, conferenceID uuid.UUID) (*stats.ConferenceStats, error) {
	key := fmt.Sprintf("stats:conference:%s", conferenceID)

	var cached stats.ConferenceStats
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	} else if found {
		return &cached, nil
	}

	result, err := s.repo.GetConferenceStats(ctx, conferenceID)
	if err != nil {
		return nil, err
	}
	result.AcceptanceRate = acceptanceRate(result)

	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
	return result, nil
}

func (s *statsService) ListCoauthors(ctx context.Context, authorID uuid.UUID) ([]stats.CoauthorPair, error) {
	key := fmt.Sprintf("stats:coauthors:%s", authorID)

	var cached []stats.CoauthorPair
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	} else if found {
		return cached, nil
	}

	pairs, err := s.repo.ListCoauthors(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, pairs, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
	return pairs, nil
}

func (s *statsService) ListCoauthorPairs(ctx context.Context) ([]stats.CoauthorPair, error) {
	const key = "stats:coauthor_pairs"

	var cached []stats.CoauthorPair
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	} else if found {
		return cached, nil
	}

	pairs, err := s.repo.ListCoauthorPairs(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, pairs, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
	return pairs, nil
}

func (s *statsService) Refresh(ctx context.Context) error {
	if err := s.repo.RefreshAll(ctx); err != nil {
		return err
	}
	if err := s.cache.DeletePattern(ctx, "stats:*"); err != nil {
		return fmt.Errorf("views refreshed but cache invalidation failed: %w", err)
	}
	log.Info().Msg("Reporting views refreshed")
	return nil
}

// acceptanceRate derives the acceptance percentage, one decimal place.
// Unknown or zero submission counts yield nil rather than a zero rate.
func acceptanceRate(cs *stats.ConferenceStats) *decimal.Decimal {
	if cs.SubmissionCount == nil || *cs.SubmissionCount == 0 || cs.AcceptanceCount == nil {
		return nil
	}
	rate := decimal.NewFromInt(int64(*cs.AcceptanceCount)).
		Div(decimal.NewFromInt(int64(*cs.SubmissionCount))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return &rate
}
