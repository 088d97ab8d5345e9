// Package portfolio assembles the render-ready portfolio view out of the
// profile row and its six collections.
package portfolio

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/certification"
	"devfolio/internal/domain/education"
	"devfolio/internal/domain/experience"
	"devfolio/internal/domain/interest"
	"devfolio/internal/domain/profile"
	"devfolio/internal/domain/project"
	"devfolio/internal/domain/skill"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"

	portfoliodom "devfolio/internal/domain/portfolio"
)

var tracer = otel.Tracer("portfolio_usecase")

// publicViewTTL caps staleness when an invalidation or event is lost; the
// refresher drops the entry on every write so the cache is normally fresh.
const publicViewTTL = 5 * time.Minute

// AggregateUseCase reads all seven tables for one owner and assembles the
// aggregate view. Reads run concurrently and are best-effort: a failing
// table yields an empty section and is recorded in View.Degraded rather
// than failing the whole page.
type AggregateUseCase struct {
	profileRepo       profile.Repository
	educationRepo     education.Repository
	experienceRepo    experience.Repository
	projectRepo       project.Repository
	skillRepo         skill.Repository
	certificationRepo certification.Repository
	interestRepo      interest.Repository
	cache             service.ViewCache
	logger            logger.Logger
}

func NewAggregateUseCase(
	profileRepo profile.Repository,
	educationRepo education.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	certificationRepo certification.Repository,
	interestRepo interest.Repository,
	cache service.ViewCache,
	log logger.Logger,
) *AggregateUseCase {
	return &AggregateUseCase{
		profileRepo:       profileRepo,
		educationRepo:     educationRepo,
		experienceRepo:    experienceRepo,
		projectRepo:       projectRepo,
		skillRepo:         skillRepo,
		certificationRepo: certificationRepo,
		interestRepo:      interestRepo,
		cache:             cache,
		logger:            log,
	}
}

// ExecuteForOwner assembles the view for a known owner. The profile read
// and the six list reads run in parallel and all of them are awaited; each
// failed read degrades its own section only.
func (uc *AggregateUseCase) ExecuteForOwner(ctx context.Context, ownerID uuid.UUID) (*portfoliodom.View, error) {
	ctx, span := tracer.Start(ctx, "ExecuteForOwner")
	defer span.End()

	v := portfoliodom.EmptyView()
	v.Found = true

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	degrade := func(table string, err error) {
		uc.logger.Warn("Portfolio section read failed, serving empty section",
			zap.String("table", table), zap.Error(err))
		mu.Lock()
		v.Degraded = append(v.Degraded, table)
		mu.Unlock()
	}

	wg.Add(7)
	go func() {
		defer wg.Done()
		p, err := uc.profileRepo.GetByOwnerID(ctx, ownerID)
		if err != nil {
			degrade("profiles", err)
			return
		}
		v.Profile = p
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.educationRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("education", err)
			return
		}
		v.Education = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.experienceRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("experiences", err)
			return
		}
		v.Experiences = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.projectRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("projects", err)
			return
		}
		v.Projects = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.skillRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("skills", err)
			return
		}
		v.Skills = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.certificationRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("certifications", err)
			return
		}
		v.Certifications = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := uc.interestRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			degrade("interests", err)
			return
		}
		v.Interests = rows
	}()
	wg.Wait()

	if len(v.Degraded) > 0 {
		span.SetAttributes(attribute.StringSlice("portfolio.degraded_tables", v.Degraded))
	}

	return v, nil
}

// ExecutePublic resolves the owner shown on the public page and returns the
// cached view when one is present. With no profile row anywhere it returns
// the explicit empty state instead of an error.
func (uc *AggregateUseCase) ExecutePublic(ctx context.Context) (*portfoliodom.View, error) {
	ctx, span := tracer.Start(ctx, "ExecutePublic")
	defer span.End()

	if uc.cache != nil {
		cached, err := uc.cache.GetPublicView(ctx)
		if err != nil {
			uc.logger.Warn("Portfolio view cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	first, err := uc.profileRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return portfoliodom.EmptyView(), nil
		}
		return nil, err
	}

	v, err := uc.ExecuteForOwner(ctx, first.OwnerID)
	if err != nil {
		return nil, err
	}

	// A degraded assembly never goes into the cache; the next request
	// retries the failed tables instead of pinning partial data.
	if uc.cache != nil && len(v.Degraded) == 0 {
		if err := uc.cache.SetPublicView(ctx, v, publicViewTTL); err != nil {
			uc.logger.Warn("Portfolio view cache write failed", zap.Error(err))
		}
	}

	return v, nil
}
