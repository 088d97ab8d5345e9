package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type fakeProfileRepo struct {
	byOwner func(ownerID uuid.UUID) (*profile.Profile, error)
	first   func() (*profile.Profile, error)
}

func (f *fakeProfileRepo) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return f.byOwner(ownerID)
}
func (f *fakeProfileRepo) GetFirst(_ context.Context) (*profile.Profile, error) { return f.first() }
func (f *fakeProfileRepo) Upsert(_ context.Context, _ *profile.Profile) error {
	return errors.New("not implemented")
}

type fakeEducationRepo struct {
	list func(ownerID uuid.UUID) ([]*education.Education, error)
}

func (f *fakeEducationRepo) Save(_ context.Context, _ *education.Education) error   { return nil }
func (f *fakeEducationRepo) Update(_ context.Context, _ *education.Education) error { return nil }
func (f *fakeEducationRepo) Delete(_ context.Context, _, _ uuid.UUID) error         { return nil }
func (f *fakeEducationRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*education.Education, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeEducationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	return f.list(ownerID)
}

type fakeExperienceRepo struct {
	list func(ownerID uuid.UUID) ([]*experience.Experience, error)
}

func (f *fakeExperienceRepo) Save(_ context.Context, _ *experience.Experience) error   { return nil }
func (f *fakeExperienceRepo) Update(_ context.Context, _ *experience.Experience) error { return nil }
func (f *fakeExperienceRepo) Delete(_ context.Context, _, _ uuid.UUID) error           { return nil }
func (f *fakeExperienceRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*experience.Experience, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeExperienceRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return f.list(ownerID)
}

type fakeProjectRepo struct {
	list func(ownerID uuid.UUID) ([]*project.Project, error)
}

func (f *fakeProjectRepo) Save(_ context.Context, _ *project.Project) error   { return nil }
func (f *fakeProjectRepo) Update(_ context.Context, _ *project.Project) error { return nil }
func (f *fakeProjectRepo) Delete(_ context.Context, _, _ uuid.UUID) error     { return nil }
func (f *fakeProjectRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*project.Project, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeProjectRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return f.list(ownerID)
}

type fakeSkillRepo struct {
	list func(ownerID uuid.UUID) ([]*skill.Skill, error)
}

func (f *fakeSkillRepo) Save(_ context.Context, _ *skill.Skill) error   { return nil }
func (f *fakeSkillRepo) Update(_ context.Context, _ *skill.Skill) error { return nil }
func (f *fakeSkillRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }
func (f *fakeSkillRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*skill.Skill, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSkillRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return f.list(ownerID)
}

type fakeCertificationRepo struct {
	list func(ownerID uuid.UUID) ([]*certification.Certification, error)
}

func (f *fakeCertificationRepo) Save(_ context.Context, _ *certification.Certification) error {
	return nil
}
func (f *fakeCertificationRepo) Update(_ context.Context, _ *certification.Certification) error {
	return nil
}
func (f *fakeCertificationRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }
func (f *fakeCertificationRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*certification.Certification, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeCertificationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*certification.Certification, error) {
	return f.list(ownerID)
}

type fakeInterestRepo struct {
	list func(ownerID uuid.UUID) ([]*interest.Interest, error)
}

func (f *fakeInterestRepo) Save(_ context.Context, _ *interest.Interest) error   { return nil }
func (f *fakeInterestRepo) Update(_ context.Context, _ *interest.Interest) error { return nil }
func (f *fakeInterestRepo) Delete(_ context.Context, _, _ uuid.UUID) error       { return nil }
func (f *fakeInterestRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*interest.Interest, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeInterestRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*interest.Interest, error) {
	return f.list(ownerID)
}

type memoryViewCache struct {
	view *portfoliodom.View
	sets int
}

func (c *memoryViewCache) GetPublicView(_ context.Context) (*portfoliodom.View, error) {
	return c.view, nil
}
func (c *memoryViewCache) SetPublicView(_ context.Context, v *portfoliodom.View, _ time.Duration) error {
	c.view = v
	c.sets++
	return nil
}
func (c *memoryViewCache) InvalidatePublicView(_ context.Context) error {
	c.view = nil
	return nil
}

var _ service.ViewCache = (*memoryViewCache)(nil)

func newTestUseCase(ownerID uuid.UUID) (*AggregateUseCase, *memoryViewCache) {
	name := "Ada"
	cache := &memoryViewCache{}
	uc := NewAggregateUseCase(
		&fakeProfileRepo{
			byOwner: func(id uuid.UUID) (*profile.Profile, error) {
				return &profile.Profile{OwnerID: id, FullName: &name}, nil
			},
			first: func() (*profile.Profile, error) {
				return &profile.Profile{OwnerID: ownerID, FullName: &name}, nil
			},
		},
		&fakeEducationRepo{list: func(uuid.UUID) ([]*education.Education, error) {
			return []*education.Education{}, nil
		}},
		&fakeExperienceRepo{list: func(uuid.UUID) ([]*experience.Experience, error) {
			return []*experience.Experience{}, nil
		}},
		&fakeProjectRepo{list: func(id uuid.UUID) ([]*project.Project, error) {
			return []*project.Project{{ID: uuid.New(), OwnerID: id, Title: "devfolio"}}, nil
		}},
		&fakeSkillRepo{list: func(id uuid.UUID) ([]*skill.Skill, error) {
			return []*skill.Skill{{ID: uuid.New(), OwnerID: id, Category: "Backend", Name: "Go", Level: 5}}, nil
		}},
		&fakeCertificationRepo{list: func(uuid.UUID) ([]*certification.Certification, error) {
			return []*certification.Certification{}, nil
		}},
		&fakeInterestRepo{list: func(uuid.UUID) ([]*interest.Interest, error) {
			return []*interest.Interest{}, nil
		}},
		cache,
		logger.NewNopLogger(),
	)
	return uc, cache
}

func TestExecuteForOwner_AssemblesAllSections(t *testing.T) {
	ownerID := uuid.New()
	uc, _ := newTestUseCase(ownerID)

	v, err := uc.ExecuteForOwner(context.Background(), ownerID)
	require.NoError(t, err)

	assert.True(t, v.Found)
	require.NotNil(t, v.Profile)
	assert.Equal(t, ownerID, v.Profile.OwnerID)
	assert.Len(t, v.Projects, 1)
	assert.Len(t, v.Skills, 1)
	assert.Empty(t, v.Degraded)

	// Empty tables come back as empty slices, never nil.
	assert.NotNil(t, v.Education)
	assert.NotNil(t, v.Experiences)
	assert.NotNil(t, v.Certifications)
	assert.NotNil(t, v.Interests)
}

func TestExecuteForOwner_ScopesReadsToOwner(t *testing.T) {
	ownerID := uuid.New()
	uc, _ := newTestUseCase(ownerID)
	uc.projectRepo = &fakeProjectRepo{list: func(id uuid.UUID) ([]*project.Project, error) {
		assert.Equal(t, ownerID, id)
		return []*project.Project{}, nil
	}}

	_, err := uc.ExecuteForOwner(context.Background(), ownerID)
	require.NoError(t, err)
}

func TestExecuteForOwner_FailedTableDegrades(t *testing.T) {
	ownerID := uuid.New()
	uc, _ := newTestUseCase(ownerID)
	uc.skillRepo = &fakeSkillRepo{list: func(uuid.UUID) ([]*skill.Skill, error) {
		return nil, errors.New("connection reset")
	}}

	v, err := uc.ExecuteForOwner(context.Background(), ownerID)
	require.NoError(t, err)

	assert.True(t, v.Found)
	assert.NotNil(t, v.Skills)
	assert.Empty(t, v.Skills)
	assert.Equal(t, []string{"skills"}, v.Degraded)
	// The other sections are unaffected.
	assert.Len(t, v.Projects, 1)
}

func TestExecutePublic_NoProfileReturnsEmptyState(t *testing.T) {
	uc, cache := newTestUseCase(uuid.New())
	uc.profileRepo = &fakeProfileRepo{
		byOwner: func(uuid.UUID) (*profile.Profile, error) { return nil, errors.New("unreachable") },
		first: func() (*profile.Profile, error) {
			return nil, apperror.NewNotFound("profile", "first")
		},
	}

	v, err := uc.ExecutePublic(context.Background())
	require.NoError(t, err)

	assert.False(t, v.Found)
	assert.Nil(t, v.Profile)
	assert.Empty(t, v.Projects)
	assert.Zero(t, cache.sets)
}

func TestExecutePublic_PrimesAndServesCache(t *testing.T) {
	ownerID := uuid.New()
	uc, cache := newTestUseCase(ownerID)

	first, err := uc.ExecutePublic(context.Background())
	require.NoError(t, err)
	assert.True(t, first.Found)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache without touching the repos.
	uc.projectRepo = &fakeProjectRepo{list: func(uuid.UUID) ([]*project.Project, error) {
		t.Error("repository hit despite warm cache")
		return []*project.Project{}, nil
	}}
	second, err := uc.ExecutePublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestExecutePublic_DegradedViewIsNotCached(t *testing.T) {
	ownerID := uuid.New()
	uc, cache := newTestUseCase(ownerID)
	uc.certificationRepo = &fakeCertificationRepo{list: func(uuid.UUID) ([]*certification.Certification, error) {
		return nil, errors.New("timeout")
	}}

	v, err := uc.ExecutePublic(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"certifications"}, v.Degraded)
	assert.Zero(t, cache.sets)
	assert.Nil(t, cache.view)
}
