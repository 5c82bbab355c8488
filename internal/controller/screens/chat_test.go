package screens

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// chatServer fakes a thread holding message ids lastPage*perPage..1, newest
// first, served two per page.
type chatServer struct {
	mu           sync.Mutex
	pageRequests []int
	sendCount    int
	lastPage     int
	sentBodies   []string
}

func (s *chatServer) handler() http.HandlerFunc {
	const perPage = 2
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/messages/"):
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == 0 {
				page = 1
			}
			s.pageRequests = append(s.pageRequests, page)

			// Newest first: page 1 starts at the highest id.
			total := s.lastPage * perPage
			first := total - (page-1)*perPage
			fmt.Fprintf(w, `{"success":true,"data":{
				"messages":[{"id":%d,"body":"msg %d"},{"id":%d,"body":"msg %d"}],
				"has_more":%t,"current_page":%d}}`,
				first, first, first-1, first-1, page < s.lastPage, page)

		case r.Method == http.MethodPost && r.URL.Path == "/messages/send":
			r.ParseMultipartForm(1 << 20)
			s.sendCount++
			s.sentBodies = append(s.sentBodies, r.FormValue("body"))
			fmt.Fprintf(w, `{"success":true,"data":{"id":100,"body":%q}}`, r.FormValue("body"))

		case r.Method == http.MethodGet && r.URL.Path == "/conversations":
			fmt.Fprintf(w, `{"success":true,"data":{"conversations":[
				{"id":1,"unread_count":2},{"id":2,"unread_count":1}]}}`)

		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"success":false,"message":"not found"}`)
		}
	}
}

func (s *chatServer) pages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.pageRequests...)
}

func (s *chatServer) sends() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendCount
}

func newChatFixture(t *testing.T, lastPage int) (*ChatScreen, *chatServer) {
	t.Helper()
	fake := &chatServer{lastPage: lastPage}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	client := api.NewClient(server.URL, "en", 5*time.Second, nil, logger)
	repo := repository.NewChatRepository(client, query.New(0, logger), logger)
	return NewChatScreen(repo, logger), fake
}

func messageIDs(messages []model.Message) []int64 {
	ids := make([]int64, len(messages))
	for i, message := range messages {
		ids[i] = message.ID
	}
	return ids
}

func TestSelectLoadsNewestPageOldestFirst(t *testing.T) {
	screen, fake := newChatFixture(t, 3)

	require.NoError(t, screen.Select(context.Background(), 1))

	// Server sent ids 6,5 newest first; display is oldest first.
	assert.Equal(t, []int64{5, 6}, messageIDs(screen.Messages()))
	assert.True(t, screen.HasMore())
	assert.True(t, screen.TakeScrollToBottom())
	assert.Equal(t, []int{1}, fake.pages())
}

func TestScrolledToTopPrependsOlderPages(t *testing.T) {
	screen, fake := newChatFixture(t, 3)
	ctx := context.Background()
	require.NoError(t, screen.Select(ctx, 1))

	require.NoError(t, screen.ScrolledToTop(ctx))
	assert.Equal(t, []int64{3, 4, 5, 6}, messageIDs(screen.Messages()))
	assert.True(t, screen.HasMore())

	require.NoError(t, screen.ScrolledToTop(ctx))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, messageIDs(screen.Messages()))
	assert.False(t, screen.HasMore())

	assert.Equal(t, []int{1, 2, 3}, fake.pages())
}

func TestScrolledToTopStopsWhenExhausted(t *testing.T) {
	screen, fake := newChatFixture(t, 1)
	ctx := context.Background()
	require.NoError(t, screen.Select(ctx, 1))
	assert.False(t, screen.HasMore())

	// However often the user hits the top, no request goes out.
	require.NoError(t, screen.ScrolledToTop(ctx))
	require.NoError(t, screen.ScrolledToTop(ctx))
	require.NoError(t, screen.ScrolledToTop(ctx))
	assert.Equal(t, []int{1}, fake.pages())
}

func TestScrolledToTopWithoutSelection(t *testing.T) {
	screen, fake := newChatFixture(t, 3)

	require.NoError(t, screen.ScrolledToTop(context.Background()))
	assert.Empty(t, fake.pages())
}

func TestSendClearsComposerAndRefetchesPageOne(t *testing.T) {
	screen, fake := newChatFixture(t, 2)
	ctx := context.Background()
	require.NoError(t, screen.Select(ctx, 1))
	screen.TakeScrollToBottom()

	screen.SetComposer("hello there")
	require.NoError(t, screen.Send(ctx))

	assert.Equal(t, 1, fake.sends(), "exactly one send request")
	assert.Empty(t, screen.Composer())
	assert.True(t, screen.TakeScrollToBottom())
	// The thread came back from the server, not from a local insert.
	assert.Equal(t, []int{1, 1}, fake.pages())
	assert.Equal(t, []int64{3, 4}, messageIDs(screen.Messages()))
}

func TestSendWithEmptyComposerIsNoop(t *testing.T) {
	screen, fake := newChatFixture(t, 2)
	ctx := context.Background()
	require.NoError(t, screen.Select(ctx, 1))

	require.NoError(t, screen.Send(ctx))
	assert.Equal(t, 0, fake.sends())
}

func TestSendWithoutSelection(t *testing.T) {
	screen, fake := newChatFixture(t, 2)
	screen.SetComposer("orphan")

	require.Error(t, screen.Send(context.Background()))
	assert.Equal(t, 0, fake.sends())
}

func TestSendAttachment(t *testing.T) {
	screen, fake := newChatFixture(t, 2)
	ctx := context.Background()
	require.NoError(t, screen.Select(ctx, 1))

	screen.Attach(model.AttachmentVoice, "note.ogg", strings.NewReader("audio-bytes"))
	require.NoError(t, screen.Send(ctx))
	assert.Equal(t, 1, fake.sends())
}

func TestUnreadTotal(t *testing.T) {
	screen, _ := newChatFixture(t, 2)

	require.NoError(t, screen.LoadConversations(context.Background()))
	assert.Len(t, screen.Conversations(), 2)
	assert.Equal(t, 3, screen.UnreadTotal())
}

func TestSelectErrorShowsBanner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"success":false,"message":"thread unavailable"}`)
	}))
	defer server.Close()

	logger := zap.NewNop()
	client := api.NewClient(server.URL, "en", 5*time.Second, nil, logger)
	repo := repository.NewChatRepository(client, query.New(0, logger), logger)
	screen := NewChatScreen(repo, logger)

	require.Error(t, screen.Select(context.Background(), 1))
	assert.Equal(t, "❌ thread unavailable", screen.ErrorBanner())
	assert.Empty(t, screen.Messages())
}
