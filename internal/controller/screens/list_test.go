package screens

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/controller/forms"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// examServer fakes the exams endpoints and records every request.
type examServer struct {
	mu       sync.Mutex
	requests []string // "METHOD path?query"
	listErr  int      // when non-zero, GET /exams fails with this status
}

func (s *examServer) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		entry += "?" + r.URL.RawQuery
	}
	s.requests = append(s.requests, entry)
}

func (s *examServer) count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, entry := range s.requests {
		if entry == method+" "+path || strings.HasPrefix(entry, method+" "+path+"?") {
			n++
		}
	}
	return n
}

func (s *examServer) failListWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = status
}

func (s *examServer) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return ""
	}
	return s.requests[len(s.requests)-1]
}

func (s *examServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.record(r)

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/exams":
			s.mu.Lock()
			failWith := s.listErr
			s.mu.Unlock()
			if failWith != 0 {
				w.WriteHeader(failWith)
				fmt.Fprintf(w, `{"success":false,"message":"exams unavailable"}`)
				return
			}
			page := r.URL.Query().Get("page")
			if page == "" {
				page = "1"
			}
			fmt.Fprintf(w, `{"success":true,"data":{
				"exams":[{"id":1,"title":"Algebra midterm","status":"upcoming","date":"2026-09-10","start_time":"10:00","duration":90,"total_marks":100}],
				"current_page":%s,"last_page":3,"per_page":10,"total":21}}`, page)
		case r.Method == http.MethodPost && r.URL.Path == "/exams":
			var input repository.ExamInput
			json.NewDecoder(r.Body).Decode(&input)
			fmt.Fprintf(w, `{"success":true,"data":{"id":9,"title":%q,"status":"upcoming"}}`, input.Title)
		case r.Method == http.MethodPut:
			fmt.Fprintf(w, `{"success":true,"data":{"id":1,"title":"Updated","status":"upcoming"}}`)
		case r.Method == http.MethodDelete:
			fmt.Fprintf(w, `{"success":true,"message":"Deleted"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"success":false,"message":"not found"}`)
		}
	}
}

func newExamsFixture(t *testing.T) (*ExamsScreen, *examServer) {
	t.Helper()
	fake := &examServer{}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	client := api.NewClient(server.URL, "en", 5*time.Second, nil, logger)
	cache := query.New(0, logger)
	repo := repository.NewExamRepository(client, cache, logger)
	return NewExamsScreen(repo, "en", logger), fake
}

func validExamValues() forms.ExamValues {
	return forms.ExamValues{
		Title:      "Algebra midterm",
		SubjectID:  3,
		TeacherID:  5,
		Date:       "2026-09-10",
		StartTime:  "10:00",
		Duration:   90,
		TotalMarks: 100,
	}
}

func TestReloadPopulatesRows(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()

	assert.Nil(t, screen.List.Rows(), "no rows before the first fetch")

	require.NoError(t, screen.List.Reload(ctx))
	rows := screen.List.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Algebra midterm", rows[0].Title)
	assert.Equal(t, 3, screen.List.Meta().LastPage)
	assert.Equal(t, 1, fake.count(http.MethodGet, "/exams"))
}

func TestRepeatedReloadServedFromCache(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()

	require.NoError(t, screen.List.Reload(ctx))
	require.NoError(t, screen.List.Reload(ctx))
	assert.Equal(t, 1, fake.count(http.MethodGet, "/exams"), "second reload hits the cache")
}

func TestFilterChangeGoesToServer(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()

	require.NoError(t, screen.List.SetPage(ctx, 2))
	require.NoError(t, screen.List.SetFilter(ctx, repository.ExamFilter{Status: model.ExamStatusCompleted}))

	assert.Equal(t, 2, fake.count(http.MethodGet, "/exams"))
	assert.Contains(t, fake.last(), "status=completed")
	assert.Equal(t, 1, screen.List.Filter().Page, "filter change resets to the first page")
}

func TestPageCallbackFetchesThatPage(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()
	require.NoError(t, screen.List.Reload(ctx))

	handled, err := screen.List.HandlePageCallback(ctx, "exams_page:3")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Contains(t, fake.last(), "page=3")
	assert.Equal(t, 3, screen.List.Meta().CurrentPage)

	handled, err = screen.List.HandlePageCallback(ctx, "homework_page:2")
	require.NoError(t, err)
	assert.False(t, handled, "foreign callbacks are ignored")
}

func TestFetchErrorShowsBannerWithoutRetry(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()
	fake.failListWith(http.StatusInternalServerError)

	require.Error(t, screen.List.Reload(ctx))
	assert.Equal(t, 1, fake.count(http.MethodGet, "/exams"), "no automatic retry")
	assert.Equal(t, "❌ exams unavailable", screen.List.ErrorBanner())
	assert.Nil(t, screen.List.Rows())
	assert.False(t, screen.List.Empty(), "error state is not the empty state")

	// A later manual reload clears the banner.
	fake.failListWith(0)
	require.NoError(t, screen.List.Reload(ctx))
	assert.Empty(t, screen.List.ErrorBanner())
}

func TestCreateSubmitsOncePostsOnceAndRefetches(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()
	require.NoError(t, screen.List.Reload(ctx))

	screen.OpenCreate()
	screen.Form.SetValues(validExamValues())
	require.NoError(t, screen.Submit(ctx))

	assert.Equal(t, 1, fake.count(http.MethodPost, "/exams"), "exactly one create request")
	assert.Equal(t, forms.ModeClosed, screen.Form.Mode(), "dialog closes on success")
	assert.Equal(t, "✅ Created successfully", screen.List.TakeNotice())
	assert.Equal(t, 2, fake.count(http.MethodGet, "/exams"), "mutation invalidates the cache and re-fetches")
}

func TestInvalidCreateSendsNothing(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()

	screen.OpenCreate()
	screen.Form.SetValues(forms.ExamValues{Title: "No subject"})
	err := screen.Submit(ctx)

	require.ErrorIs(t, err, forms.ErrInvalid)
	assert.Equal(t, 0, fake.count(http.MethodPost, "/exams"))
	assert.Equal(t, forms.ModeCreate, screen.Form.Mode())
}

func TestDeleteConfirmAndCancel(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()
	require.NoError(t, screen.List.Reload(ctx))

	// Cancelling the confirmation sends nothing.
	screen.OpenDelete(1)
	screen.Cancel()
	assert.Equal(t, 0, fake.count(http.MethodDelete, "/exams/1"))

	// Confirming sends exactly one DELETE and re-fetches.
	screen.OpenDelete(1)
	require.NoError(t, screen.Submit(ctx))
	assert.Equal(t, 1, fake.count(http.MethodDelete, "/exams/1"))
	assert.Equal(t, "🗑 Deleted successfully", screen.List.TakeNotice())
	assert.Equal(t, 2, fake.count(http.MethodGet, "/exams"))
}

func TestEditPrefillsAndSaves(t *testing.T) {
	screen, fake := newExamsFixture(t)
	ctx := context.Background()
	require.NoError(t, screen.List.Reload(ctx))

	exam := screen.List.Rows()[0]
	screen.OpenEdit(exam)
	assert.Equal(t, exam.Title, screen.Form.Values().Title)
	assert.Equal(t, exam.ID, screen.Form.TargetID())

	values := screen.Form.Values()
	values.SubjectID = 3
	values.TeacherID = 5
	screen.Form.SetValues(values)

	require.NoError(t, screen.Submit(ctx))
	assert.Equal(t, 1, fake.count(http.MethodPut, "/exams/1"))
	assert.Equal(t, "✅ Saved successfully", screen.List.TakeNotice())
}

func TestEmptyPageRendersSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"success":true,"data":{"exams":[],"current_page":1,"last_page":1,"per_page":10,"total":0}}`)
	}))
	defer server.Close()

	logger := zap.NewNop()
	client := api.NewClient(server.URL, "en", 5*time.Second, nil, logger)
	repo := repository.NewExamRepository(client, query.New(0, logger), logger)
	screen := NewExamsScreen(repo, "en", logger)

	require.NoError(t, screen.List.Reload(context.Background()))
	assert.True(t, screen.List.Empty())
	assert.Empty(t, screen.List.Rows())
	assert.Equal(t, "— no results —", EmptySentinel)
}
