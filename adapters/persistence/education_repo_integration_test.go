package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"devfolio/internal/domain/education"
	"devfolio/internal/domain/user"
	"devfolio/pkg/logger"
)

type EducationRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool        *pgxpool.Pool
	pgContainer   *postgres.PostgresContainer
	testLogger    logger.Logger
	educationRepo education.Repository
	userRepo      user.Repository
	testOwner     *user.User
	otherOwner    *user.User
}

func (s *EducationRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNopLogger()
	s.educationRepo = NewPostgresEducationRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)

	s.testOwner = s.seedOwner(ctx, "owner@example.com")
	s.otherOwner = s.seedOwner(ctx, "other@example.com")
}

func (s *EducationRepoIntegrationTestSuite) seedOwner(ctx context.Context, email string) *user.User {
	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, u); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
	return u
}

func (s *EducationRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestEducationRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(EducationRepoIntegrationTestSuite))
}

func (s *EducationRepoIntegrationTestSuite) newEntry(degree string, start time.Time) *education.Education {
	desc := "Focused on distributed systems"
	return &education.Education{
		ID:           uuid.New(),
		OwnerID:      s.testOwner.ID,
		Degree:       degree,
		Institution:  "Example University",
		StartDate:    &start,
		Description:  &desc,
		Achievements: []string{"Dean's list", "Best thesis"},
		CreatedAt:    time.Now().UTC(),
	}
}

func (s *EducationRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	entry := s.newEntry("BSc Computer Science", time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.educationRepo.Save(ctx, entry))

	found, err := s.educationRepo.FindByID(ctx, entry.ID, s.testOwner.ID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(entry.Degree, found.Degree)
	s.Equal(entry.Institution, found.Institution)
	s.Equal([]string{"Dean's list", "Best thesis"}, found.Achievements)
	s.Nil(found.EndDate)
}

func (s *EducationRepoIntegrationTestSuite) Test_FindByID_WrongOwner() {
	ctx := context.Background()

	entry := s.newEntry("MSc Data Science", time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.educationRepo.Save(ctx, entry))

	// Another owner cannot read the row even with the right ID.
	_, err := s.educationRepo.FindByID(ctx, entry.ID, s.otherOwner.ID)
	s.Error(err)
}

func (s *EducationRepoIntegrationTestSuite) Test_Update_And_Delete() {
	ctx := context.Background()

	entry := s.newEntry("BEng Software", time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.educationRepo.Save(ctx, entry))

	entry.Degree = "BEng Software Engineering"
	entry.Achievements = []string{}
	s.NoError(s.educationRepo.Update(ctx, entry))

	found, err := s.educationRepo.FindByID(ctx, entry.ID, s.testOwner.ID)
	s.NoError(err)
	s.Equal("BEng Software Engineering", found.Degree)
	s.Empty(found.Achievements)
	s.NotNil(found.Achievements)

	s.NoError(s.educationRepo.Delete(ctx, entry.ID, s.testOwner.ID))
	_, err = s.educationRepo.FindByID(ctx, entry.ID, s.testOwner.ID)
	s.Error(err)
}

func (s *EducationRepoIntegrationTestSuite) Test_Update_WrongOwner() {
	ctx := context.Background()

	entry := s.newEntry("PhD Computing", time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.educationRepo.Save(ctx, entry))

	hijacked := *entry
	hijacked.OwnerID = s.otherOwner.ID
	hijacked.Degree = "Hijacked"
	s.Error(s.educationRepo.Update(ctx, &hijacked))

	s.Error(s.educationRepo.Delete(ctx, entry.ID, s.otherOwner.ID))

	found, err := s.educationRepo.FindByID(ctx, entry.ID, s.testOwner.ID)
	s.NoError(err)
	s.Equal("PhD Computing", found.Degree)
}

func (s *EducationRepoIntegrationTestSuite) Test_ListByOwner_OrderAndScoping() {
	ctx := context.Background()

	older := s.newEntry("Ordering A", time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC))
	newer := s.newEntry("Ordering B", time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.educationRepo.Save(ctx, older))
	s.NoError(s.educationRepo.Save(ctx, newer))

	entries, err := s.educationRepo.ListByOwner(ctx, s.testOwner.ID)
	s.NoError(err)

	// Most recent start date first.
	var positions []string
	for _, e := range entries {
		if e.Degree == "Ordering A" || e.Degree == "Ordering B" {
			positions = append(positions, e.Degree)
		}
	}
	s.Equal([]string{"Ordering B", "Ordering A"}, positions)

	// The other owner sees none of it.
	otherEntries, err := s.educationRepo.ListByOwner(ctx, s.otherOwner.ID)
	s.NoError(err)
	s.Empty(otherEntries)
	s.NotNil(otherEntries)
}
