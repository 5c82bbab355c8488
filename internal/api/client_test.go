package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "en", 5*time.Second, staticToken("secret-token"), zap.NewNop())
}

func TestGetAttachesHeaders(t *testing.T) {
	var gotAuth, gotLang, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"success":true,"data":{}}`))
	})

	require.NoError(t, client.Get(context.Background(), "/data/all", nil, nil))
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "en", gotLang)
	assert.NotEmpty(t, gotRequestID)
}

func TestGetDecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":3,"name":"Basic","price":50,"currency":"USD"}}`))
	})

	var plan model.Plan
	require.NoError(t, client.Get(context.Background(), "/plans/3", nil, &plan))
	assert.Equal(t, int64(3), plan.ID)
	assert.Equal(t, "Basic", plan.Name)
	assert.Equal(t, 50.0, plan.Price)
}

func TestValidationErrorCarriesFieldMap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"title":"The title field is required."}}`))
	})

	err := client.Post(context.Background(), "/exams", map[string]string{}, nil)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "The title field is required.", validationErr.Fields["title"])
}

func TestGenericFailureBecomesError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Exam not found"}`))
	})

	err := client.Delete(context.Background(), "/exams/99")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Exam not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestSuccessFalseWithOKStatusIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Something broke"}`))
	})

	err := client.Get(context.Background(), "/plans", nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Something broke", apiErr.Message)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "en", 200*time.Millisecond, nil, zap.NewNop())

	err := client.Get(context.Background(), "/plans", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures are not api errors")
}

func TestGetPage(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{
			"plans":[{"id":1,"name":"Basic"},{"id":2,"name":"Pro"}],
			"current_page":2,"last_page":5,"per_page":2,"total":9}}`))
	})

	params := NewParams().Page(2).PerPage(2).Search("p")
	page, err := GetPage[model.Plan](context.Background(), client, "/plans", "plans", params)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "per_page=2")
	assert.Contains(t, gotQuery, "search=p")

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Pro", page.Items[1].Name)
	assert.Equal(t, model.PageMeta{CurrentPage: 2, LastPage: 5, PerPage: 2, Total: 9}, page.Meta)
}

func TestGetPageMissingCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"current_page":1,"last_page":1,"per_page":10,"total":0}}`))
	})

	_, err := GetPage[model.Plan](context.Background(), client, "/plans", "plans", NewParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `collection "plans" missing`)
}

func TestParamsSkipZeroValues(t *testing.T) {
	params := NewParams().
		Page(0).
		Search("").
		ID("subject_id", 0).
		Bool("active", false).
		Str("status", "upcoming").
		ID("teacher_id", 4)

	assert.Equal(t, "status=upcoming&teacher_id=4", params.CacheKey())
}
