package repository

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type ChatRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewChatRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// MessagePage is one page of a thread. Page 1 holds the newest messages;
// HasMore tells the thread whether older pages are left.
type MessagePage struct {
	Messages []model.Message `json:"messages"`
	HasMore  bool            `json:"has_more"`
	Page     int             `json:"current_page"`
}

// SendInput is a composed message: text, an attachment, or both.
type SendInput struct {
	ConversationID int64
	Body           string
	Attachment     *SendAttachment
}

type SendAttachment struct {
	Kind     model.AttachmentKind
	FileName string
	Content  io.Reader
}

// messagesResource scopes cache invalidation to one conversation.
func messagesResource(conversationID int64) string {
	return ResourceMessages + ":" + strconv.FormatInt(conversationID, 10)
}

// Conversations fetches the conversation list with unread counts.
func (r *ChatRepository) Conversations(ctx context.Context) ([]model.Conversation, error) {
	return query.Fetch(ctx, r.cache, ResourceConversations, "all", func(ctx context.Context) ([]model.Conversation, error) {
		var data struct {
			Conversations []model.Conversation `json:"conversations"`
		}
		if err := r.client.Get(ctx, "/conversations", nil, &data); err != nil {
			r.logger.Error("Failed to fetch conversations", zap.Error(err))
			return nil, fmt.Errorf("list conversations: %w", err)
		}

		r.logger.Info("Retrieved conversations",
			zap.Int("count", len(data.Conversations)))
		return data.Conversations, nil
	})
}

// Messages fetches one page of a conversation, newest first on page 1.
func (r *ChatRepository) Messages(ctx context.Context, conversationID int64, page int) (MessagePage, error) {
	params := api.NewParams().Page(page)
	return query.Fetch(ctx, r.cache, messagesResource(conversationID), params.CacheKey(), func(ctx context.Context) (MessagePage, error) {
		var result MessagePage
		path := fmt.Sprintf("/messages/%d", conversationID)
		if err := r.client.Get(ctx, path, params.Values(), &result); err != nil {
			r.logger.Error("Failed to fetch messages",
				zap.Int64("conversation_id", conversationID),
				zap.Int("page", page),
				zap.Error(err))
			return result, fmt.Errorf("list messages: %w", err)
		}

		r.logger.Info("Retrieved messages",
			zap.Int64("conversation_id", conversationID),
			zap.Int("page", page),
			zap.Int("count", len(result.Messages)),
			zap.Bool("has_more", result.HasMore))
		return result, nil
	})
}

// Send posts a message and invalidates the thread and the conversation
// list, so both pick up the new message on their next fetch. There is no
// optimistic local insertion.
func (r *ChatRepository) Send(ctx context.Context, input SendInput) (*model.Message, error) {
	fields := map[string]string{
		"conversation_id": strconv.FormatInt(input.ConversationID, 10),
	}
	if input.Body != "" {
		fields["body"] = input.Body
	}

	var upload *api.Upload
	if input.Attachment != nil {
		fields["attachment_kind"] = string(input.Attachment.Kind)
		upload = &api.Upload{
			Field:    "attachment",
			FileName: input.Attachment.FileName,
			Content:  input.Attachment.Content,
		}
	}

	var message model.Message
	if err := r.client.PostMultipart(ctx, "/messages/send", fields, upload, &message); err != nil {
		r.logger.Error("Failed to send message",
			zap.Int64("conversation_id", input.ConversationID),
			zap.Error(err))
		return nil, fmt.Errorf("send message: %w", err)
	}

	r.cache.Invalidate(messagesResource(input.ConversationID))
	r.cache.Invalidate(ResourceConversations)
	r.logger.Info("Message sent",
		zap.Int64("message_id", message.ID),
		zap.Int64("conversation_id", input.ConversationID))
	return &message, nil
}
