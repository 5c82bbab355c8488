package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/screens"
)

// UnreadPoller refreshes the conversation list in the background so the
// unread badge stays current while the user is elsewhere in the portal.
type UnreadPoller struct {
	chat     *screens.ChatScreen
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewUnreadPoller(chat *screens.ChatScreen, interval time.Duration, logger *zap.Logger) *UnreadPoller {
	return &UnreadPoller{
		chat:     chat,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the polling loop.
func (p *UnreadPoller) Start(ctx context.Context) {
	p.logger.Info("Starting unread-count poller",
		zap.Duration("interval", p.interval))
	go p.run(ctx)
}

// Stop stops the polling loop.
func (p *UnreadPoller) Stop() {
	p.logger.Info("Stopping unread-count poller")
	close(p.stopChan)
}

func (p *UnreadPoller) run(ctx context.Context) {
	// First refresh right away so the badge is populated on startup.
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.refresh(ctx)
		case <-p.stopChan:
			p.logger.Info("Unread-count poller stopped")
			return
		case <-ctx.Done():
			p.logger.Info("Unread-count poller cancelled")
			return
		}
	}
}

func (p *UnreadPoller) refresh(ctx context.Context) {
	if err := p.chat.LoadConversations(ctx); err != nil {
		p.logger.Warn("Failed to refresh conversations", zap.Error(err))
		return
	}

	p.logger.Debug("Conversations refreshed",
		zap.Int("unread_total", p.chat.UnreadTotal()))
}
