package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	educationUC "devfolio/internal/application/usecase/education"
	"devfolio/internal/domain/education"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

// fakeEducationRepo keeps rows in memory, scoped by owner the way the real
// repo is.
type fakeEducationRepo struct {
	rows map[uuid.UUID]*education.Education
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{rows: make(map[uuid.UUID]*education.Education)}
}

func (f *fakeEducationRepo) Save(_ context.Context, e *education.Education) error {
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEducationRepo) Update(_ context.Context, e *education.Education) error {
	existing, ok := f.rows[e.ID]
	if !ok || existing.OwnerID != e.OwnerID {
		return apperror.NewNotFound("education", e.ID.String())
	}
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEducationRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	existing, ok := f.rows[id]
	if !ok || existing.OwnerID != ownerID {
		return apperror.NewNotFound("education", id.String())
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeEducationRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*education.Education, error) {
	existing, ok := f.rows[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("education", id.String())
	}
	return existing, nil
}

func (f *fakeEducationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	entries := make([]*education.Education, 0)
	for _, e := range f.rows {
		if e.OwnerID == ownerID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func newEducationTestRouter(t *testing.T, ownerID uuid.UUID) (*gin.Engine, *fakeEducationRepo) {
	t.Helper()

	repo := newFakeEducationRepo()
	uc := educationUC.NewEducationUseCase(repo, nil, logger.NewNopLogger())
	handler := NewEducationHandler(uc, logger.NewNopLogger())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNopLogger()))
	router.Use(func(c *gin.Context) {
		c.Set(GinContextKeyOwnerID, ownerID)
		c.Next()
	})

	group := router.Group("/api/dashboard/education")
	{
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
	return router, repo
}

func TestEducationHandler_Create_ParsesCommaListAndDates(t *testing.T) {
	ownerID := uuid.New()
	router, repo := newEducationTestRouter(t, ownerID)

	body, _ := json.Marshal(gin.H{
		"degree":       "BSc Computer Science",
		"institution":  "Example University",
		"start_date":   "2018-09-01",
		"end_date":     "2022-06-30",
		"achievements": "Dean's list,  Best thesis, ",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/education", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var dto EducationDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
	assert.Equal(t, []string{"Dean's list", "Best thesis"}, dto.Achievements)
	assert.Equal(t, "Dean's list, Best thesis", dto.AchievementsText)
	assert.Equal(t, "2018-09 - 2022-06", dto.DateRange)

	// The stored row carries the parsed values, scoped to the caller.
	require.Len(t, repo.rows, 1)
	for _, e := range repo.rows {
		assert.Equal(t, ownerID, e.OwnerID)
		assert.Equal(t, []string{"Dean's list", "Best thesis"}, e.Achievements)
	}
}

func TestEducationHandler_Create_RejectsBadDate(t *testing.T) {
	router, repo := newEducationTestRouter(t, uuid.New())

	body, _ := json.Marshal(gin.H{
		"degree":      "BSc",
		"institution": "Example University",
		"start_date":  "09/2018",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/education", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, repo.rows)
}

func TestEducationHandler_Create_RejectsMissingRequiredFields(t *testing.T) {
	router, repo := newEducationTestRouter(t, uuid.New())

	body, _ := json.Marshal(gin.H{"degree": "BSc"})
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/education", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, repo.rows)
}

func TestEducationHandler_UpdateAndDelete_UnknownID(t *testing.T) {
	router, _ := newEducationTestRouter(t, uuid.New())

	body, _ := json.Marshal(gin.H{"degree": "BSc", "institution": "Example University"})
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/education/"+uuid.NewString(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	reqDel := httptest.NewRequest(http.MethodDelete, "/api/dashboard/education/"+uuid.NewString(), nil)
	rrDel := httptest.NewRecorder()
	router.ServeHTTP(rrDel, reqDel)
	assert.Equal(t, http.StatusNotFound, rrDel.Code)
}

func TestEducationHandler_RoundTrip(t *testing.T) {
	ownerID := uuid.New()
	router, _ := newEducationTestRouter(t, ownerID)

	body, _ := json.Marshal(gin.H{
		"degree":      "MSc Data Science",
		"institution": "Example University",
		"start_date":  "2022-09-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/education", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created EducationDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "2022-09 - Present", created.DateRange)

	updateBody, _ := json.Marshal(gin.H{
		"degree":      "MSc Data Science",
		"institution": "Example University",
		"start_date":  "2022-09-01",
		"end_date":    "2024-06-30",
	})
	reqUpd := httptest.NewRequest(http.MethodPut, "/api/dashboard/education/"+created.ID, bytes.NewBuffer(updateBody))
	reqUpd.Header.Set("Content-Type", "application/json")
	rrUpd := httptest.NewRecorder()
	router.ServeHTTP(rrUpd, reqUpd)
	require.Equal(t, http.StatusOK, rrUpd.Code)

	var updated EducationDTO
	require.NoError(t, json.Unmarshal(rrUpd.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2022-09 - 2024-06", updated.DateRange)

	reqDel := httptest.NewRequest(http.MethodDelete, "/api/dashboard/education/"+created.ID, nil)
	rrDel := httptest.NewRecorder()
	router.ServeHTTP(rrDel, reqDel)
	assert.Equal(t, http.StatusNoContent, rrDel.Code)

	reqGet := httptest.NewRequest(http.MethodGet, "/api/dashboard/education/"+created.ID, nil)
	rrGet := httptest.NewRecorder()
	router.ServeHTTP(rrGet, reqGet)
	assert.Equal(t, http.StatusNotFound, rrGet.Code)
}
