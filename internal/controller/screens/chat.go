package screens

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// ChatScreen is the conversation list plus the selected thread. The
// thread loads backwards: page 1 is the newest messages, scrolling to the
// top pulls the next (older) page and prepends it.
type ChatScreen struct {
	mu   sync.Mutex
	repo *repository.ChatRepository
	log  *zap.Logger

	conversations []model.Conversation
	selected      int64

	// Thread state, oldest first for display.
	messages     []model.Message
	page         int
	hasMore      bool
	loadingOlder bool
	loadErr      error

	composer       string
	attachment     *repository.SendAttachment
	sending        bool
	scrollToBottom bool
}

func NewChatScreen(repo *repository.ChatRepository, logger *zap.Logger) *ChatScreen {
	return &ChatScreen{
		repo: repo,
		log:  logger,
	}
}

// LoadConversations refreshes the conversation list.
func (s *ChatScreen) LoadConversations(ctx context.Context) error {
	conversations, err := s.repo.Conversations(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conversations = conversations
	s.mu.Unlock()
	return nil
}

func (s *ChatScreen) Conversations() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations
}

// UnreadTotal sums the server-supplied unread counts.
func (s *ChatScreen) UnreadTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, conversation := range s.conversations {
		total += conversation.UnreadCount
	}
	return total
}

// Select switches to a conversation and loads its newest page.
func (s *ChatScreen) Select(ctx context.Context, conversationID int64) error {
	s.mu.Lock()
	s.selected = conversationID
	s.messages = nil
	s.page = 0
	s.hasMore = false
	s.loadErr = nil
	s.mu.Unlock()

	result, err := s.repo.Messages(ctx, conversationID, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != conversationID {
		// The user already moved on.
		return nil
	}
	if err != nil {
		s.loadErr = err
		return err
	}

	s.messages = chronological(result.Messages)
	s.page = 1
	s.hasMore = result.HasMore
	s.scrollToBottom = true
	return nil
}

// ScrolledToTop loads the next page of older messages and prepends it.
// Once the server reports has_more=false no further request is issued,
// however often the user hits the top.
func (s *ChatScreen) ScrolledToTop(ctx context.Context) error {
	s.mu.Lock()
	if s.selected == 0 || !s.hasMore || s.loadingOlder {
		s.mu.Unlock()
		return nil
	}
	s.loadingOlder = true
	conversationID := s.selected
	nextPage := s.page + 1
	s.mu.Unlock()

	result, err := s.repo.Messages(ctx, conversationID, nextPage)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingOlder = false
	if err != nil {
		s.loadErr = err
		return err
	}
	if s.selected != conversationID {
		return nil
	}

	s.messages = append(chronological(result.Messages), s.messages...)
	s.page = nextPage
	s.hasMore = result.HasMore
	return nil
}

func (s *ChatScreen) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages
}

func (s *ChatScreen) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

func (s *ChatScreen) ErrorBanner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr == nil {
		return ""
	}
	return ErrorMessage(s.loadErr)
}

// SetComposer replaces the draft text.
func (s *ChatScreen) SetComposer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer = text
}

func (s *ChatScreen) Composer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer
}

// Attach stages a file (voice note, image, video or document) for the
// next send.
func (s *ChatScreen) Attach(kind model.AttachmentKind, fileName string, content io.Reader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachment = &repository.SendAttachment{
		Kind:     kind,
		FileName: fileName,
		Content:  content,
	}
}

// Sending reports whether a send is in flight; the send control is
// disabled while it is true.
func (s *ChatScreen) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Send posts the draft. On success the composer is cleared and the thread
// re-fetched from page 1; the new message shows up only after that round
// trip, there is no optimistic insertion.
func (s *ChatScreen) Send(ctx context.Context) error {
	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return fmt.Errorf("a message is already being sent")
	}
	if s.selected == 0 {
		s.mu.Unlock()
		return fmt.Errorf("no conversation selected")
	}
	if s.composer == "" && s.attachment == nil {
		s.mu.Unlock()
		return nil
	}
	s.sending = true
	input := repository.SendInput{
		ConversationID: s.selected,
		Body:           s.composer,
		Attachment:     s.attachment,
	}
	s.mu.Unlock()

	_, err := s.repo.Send(ctx, input)

	s.mu.Lock()
	s.sending = false
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.composer = ""
	s.attachment = nil
	conversationID := s.selected
	s.mu.Unlock()

	// The repo invalidated the thread cache, so this hits the server.
	result, err := s.repo.Messages(ctx, conversationID, 1)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == conversationID {
		s.messages = chronological(result.Messages)
		s.page = 1
		s.hasMore = result.HasMore
		s.scrollToBottom = true
	}
	return nil
}

// TakeScrollToBottom consumes the auto-scroll flag.
func (s *ChatScreen) TakeScrollToBottom() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	scroll := s.scrollToBottom
	s.scrollToBottom = false
	return scroll
}

// chronological reverses a newest-first server page for display.
func chronological(messages []model.Message) []model.Message {
	reversed := make([]model.Message, len(messages))
	for i, message := range messages {
		reversed[len(messages)-1-i] = message
	}
	return reversed
}
