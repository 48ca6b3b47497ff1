package devapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/models"
)

func newTestService() *ProjectService {
	return NewProjectService(models.NewProjectList(
		models.Project{ID: models.NumericProjectID(1), Title: "X", Description: "Y", Tech: []string{"Go"}, GitHub: "http://g", Demo: "http://d"},
		models.Project{ID: models.NewProjectID("two"), Title: "Second"},
	))
}

func TestListProjects(t *testing.T) {
	rec := httptest.NewRecorder()
	Router(newTestService()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.Equal(t, 2, env.Data.Len())
	assert.Equal(t, "X", env.Data.All()[0].Title)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestListProjects_KeepsStringIDs(t *testing.T) {
	svc := NewProjectService(models.NewProjectList(
		models.Project{ID: models.NewProjectID("007"), Title: "Bond"},
		models.Project{ID: models.NewProjectID("+5"), Title: "Signed"},
	))
	rec := httptest.NewRecorder()
	Router(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"007"`)
	assert.Contains(t, rec.Body.String(), `"id":"+5"`)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, 2, env.Data.Len())
	assert.Equal(t, "007", env.Data.All()[0].ID.String())
}

func TestListProjects_EmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	Router(NewProjectService(models.ProjectList{})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestGetProject(t *testing.T) {
	router := Router(newTestService())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/two", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Second"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Router(newTestService()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":3,"title":"From file","tech":["Go","HTMX"]}]`), 0o644))

	svc, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, svc.GetAll().Len())

	p, err := svc.GetByID("3")
	require.NoError(t, err)
	assert.Equal(t, "From file", p.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
