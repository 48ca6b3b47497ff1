package projects

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Zachkp/portfolio/internal/devapi"
	"github.com/Zachkp/portfolio/internal/models"
)

func staticServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, Path, r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestListProjects_Success(t *testing.T) {
	srv, calls := staticServer(t, http.StatusOK,
		`{"success":true,"data":[{"id":1,"title":"X","description":"Y","tech":["Go"],"github":"http://g","demo":"http://d"}]}`)

	list, err := NewClient(srv.URL).ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	require.Equal(t, 1, list.Len())
	p := list.All()[0]
	assert.Equal(t, "1", p.ID.String())
	assert.Equal(t, "X", p.Title)
	assert.Equal(t, []string{"Go"}, p.Tech)
}

func TestListProjects_SuccessWithoutData(t *testing.T) {
	srv, _ := staticServer(t, http.StatusOK, `{"success":true}`)

	list, err := NewClient(srv.URL + "/").ListProjects(context.Background())
	require.NoError(t, err)
	assert.True(t, list.Empty())
}

func TestListProjects_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "success false",
			status: http.StatusOK,
			body:   `{"success":false,"data":[{"id":1}]}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnsuccessful)
			},
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   `<html>oops</html>`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "parse response")
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"success":true,"data":[]}`,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := staticServer(t, tt.status, tt.body)
			list, err := NewClient(srv.URL).ListProjects(context.Background())
			require.Error(t, err)
			assert.True(t, list.Empty())
			tt.check(t, err)
		})
	}
}

func TestListProjects_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	list, err := NewClient(url).ListProjects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
	assert.True(t, list.Empty())
}

func TestListProjects_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond)).ListProjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestListProjects_AgainstDevAPI(t *testing.T) {
	svc := devapi.NewProjectService(models.NewProjectList(
		models.Project{ID: models.NewProjectID("a"), Title: "First"},
		models.Project{ID: models.NewProjectID("b"), Title: "Second"},
		models.Project{ID: models.NewProjectID("c"), Title: "Third"},
	))
	srv := httptest.NewServer(devapi.Router(svc))
	t.Cleanup(srv.Close)

	list, err := NewClient(srv.URL).ListProjects(context.Background())
	require.NoError(t, err)

	var titles []string
	for _, p := range list.All() {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestListProjects_Span(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	srv, _ := staticServer(t, http.StatusOK, `{"success":true,"data":[{"id":1},{"id":2}]}`)
	_, err := NewClient(srv.URL, WithTracerProvider(tp)).ListProjects(context.Background())
	require.NoError(t, err)

	failing, _ := staticServer(t, http.StatusBadGateway, ``)
	_, err = NewClient(failing.URL, WithTracerProvider(tp)).ListProjects(context.Background())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "projects.list", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	var count int64 = -1
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "projects.count" {
			count = kv.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(2), count)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
