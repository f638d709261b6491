package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/repository"
	"github.com/dtalero78/siigo-retiros/internal/survey"
	"github.com/dtalero78/siigo-retiros/internal/util"
	"github.com/dtalero78/siigo-retiros/pkg/monitoring"
)

const statsCacheTTL = 5 * time.Minute

// ResponseService owns the survey submission pipeline: validation,
// canonical mapping, persistence, aggregation and AI analysis.
type ResponseService struct {
	responses *repository.ResponseRepository
	users     *repository.UserRepository
	resolver  *survey.Resolver
	renderer  *survey.Renderer
	mapper    *survey.Mapper
	ai        *AIService
	cache     *redis.Client
	log       *zap.Logger
}

func NewResponseService(
	responses *repository.ResponseRepository,
	users *repository.UserRepository,
	resolver *survey.Resolver,
	renderer *survey.Renderer,
	mapper *survey.Mapper,
	ai *AIService,
	cache *redis.Client,
	log *zap.Logger,
) *ResponseService {
	return &ResponseService{
		responses: responses,
		users:     users,
		resolver:  resolver,
		renderer:  renderer,
		mapper:    mapper,
		ai:        ai,
		cache:     cache,
		log:       log,
	}
}

// Submit validates and stores one survey submission. Validation errors
// come back as a list so the form can highlight every missing field;
// they are not a service error.
func (s *ResponseService) Submit(ctx context.Context, raw json.RawMessage, area string) (*model.Response, []survey.ValidationError, error) {
	sub := survey.ParseSubmission(raw)
	if a := sub.String("area"); a != "" {
		area = a
	}
	cat := s.resolver.Resolve(area)

	if errs := s.renderer.ValidateSubmission(cat, sub); len(errs) > 0 {
		monitoring.SubmissionCounter.WithLabelValues(area, "invalid").Inc()
		return nil, errs, nil
	}

	rec := s.mapper.MapToCanonical(raw, area)
	if err := s.responses.Create(rec); err != nil {
		if errors.Is(err, util.ErrDuplicateSubmission) {
			monitoring.SubmissionCounter.WithLabelValues(area, "duplicate").Inc()
		} else {
			monitoring.SubmissionCounter.WithLabelValues(area, "error").Inc()
		}
		return nil, nil, err
	}

	if rec.Identification != "" {
		if err := s.users.MarkResponseSubmitted(rec.Identification); err != nil {
			s.log.Warn("roster submitted flag not updated",
				zap.String("identification", rec.Identification),
				zap.Error(err))
		}
	}

	s.invalidateStats(ctx)
	monitoring.SubmissionCounter.WithLabelValues(area, "ok").Inc()
	s.log.Info("survey response stored",
		zap.Uint("id", rec.ID),
		zap.String("area", rec.Area),
		zap.String("catalog", cat.Name))
	return rec, nil, nil
}

func (s *ResponseService) List(area string, page, pageSize int) ([]model.Response, int64, error) {
	return s.responses.FindAll(area, page, pageSize)
}

func (s *ResponseService) Get(id uint) (*model.Response, error) {
	return s.responses.FindByID(id)
}

func (s *ResponseService) Delete(ctx context.Context, id uint) error {
	if err := s.responses.Delete(id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// Analyze runs the AI summary for one response and stores the result.
func (s *ResponseService) Analyze(ctx context.Context, id uint) (string, error) {
	rec, err := s.responses.FindByID(id)
	if err != nil {
		return "", err
	}
	analysis, err := s.ai.AnalyzeResponse(ctx, rec)
	if err != nil {
		return "", err
	}
	if err := s.responses.UpdateAnalysis(id, analysis); err != nil {
		return "", err
	}
	return analysis, nil
}

// Stats aggregates all responses, serving from the redis cache when one
// is wired. area narrows the aggregation; empty means all areas.
func (s *ResponseService) Stats(ctx context.Context, area string) (*survey.Report, error) {
	key := "stats:" + area

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var report survey.Report
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn("stats cache read failed", zap.Error(err))
		}
	}

	records, err := s.responses.FindAllForAggregation(area)
	if err != nil {
		return nil, err
	}
	report := survey.Aggregate(records)

	if s.cache != nil {
		if payload, err := json.Marshal(&report); err == nil {
			if err := s.cache.Set(ctx, key, payload, statsCacheTTL).Err(); err != nil {
				s.log.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return &report, nil
}

// AllForExport loads every response oldest first for the CSV export and
// the backup dump.
func (s *ResponseService) AllForExport(area string) ([]model.Response, error) {
	return s.responses.FindAllForAggregation(area)
}

// invalidateStats drops every cached report after a write.
func (s *ResponseService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, "stats:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Warn("stats cache invalidation failed",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("stats cache scan failed", zap.Error(err))
	}
}
