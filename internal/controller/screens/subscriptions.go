package screens

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/formatting"
	"github.com/ahmedgamal1254/lms-portal/internal/controller/forms"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// SubscriptionsScreen is the admin subscriptions list plus its CRUD
// dialog. The active-subscriptions view is the same screen with the
// active filter pinned.
type SubscriptionsScreen struct {
	List *ListScreen[model.Subscription, repository.SubscriptionFilter]
	Form *forms.Form[forms.SubscriptionValues]

	repo *repository.SubscriptionRepository
	lang string
}

func NewSubscriptionsScreen(repo *repository.SubscriptionRepository, lang string, logger *zap.Logger) *SubscriptionsScreen {
	return newSubscriptionsScreen("subscriptions", repository.SubscriptionFilter{}, repo, lang, logger)
}

// NewActiveSubscriptionsScreen pins the active-only filter; it survives
// page changes because WithPage copies the rest of the filter.
func NewActiveSubscriptionsScreen(repo *repository.SubscriptionRepository, lang string, logger *zap.Logger) *SubscriptionsScreen {
	filter := repository.SubscriptionFilter{ActiveOnly: true}
	return newSubscriptionsScreen("active_subscriptions", filter, repo, lang, logger)
}

func newSubscriptionsScreen(name string, filter repository.SubscriptionFilter, repo *repository.SubscriptionRepository, lang string, logger *zap.Logger) *SubscriptionsScreen {
	return &SubscriptionsScreen{
		List: NewListScreen(name, filter, repo.List, logger),
		Form: forms.New[forms.SubscriptionValues](logger),
		repo: repo,
		lang: lang,
	}
}

func (s *SubscriptionsScreen) OpenCreate() {
	s.Form.OpenCreate(forms.SubscriptionValues{})
}

func (s *SubscriptionsScreen) OpenEdit(subscription model.Subscription) {
	s.Form.OpenEdit(subscription.ID, forms.SubscriptionValuesFrom(subscription))
}

func (s *SubscriptionsScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *SubscriptionsScreen) Cancel() {
	s.Form.Close()
}

func (s *SubscriptionsScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.SubscriptionValues) error {
		switch mode {
		case forms.ModeCreate:
			_, err := s.repo.Create(ctx, values.Input())
			return err
		case forms.ModeEdit:
			_, err := s.repo.Update(ctx, id, values.Input())
			return err
		case forms.ModeDelete:
			return s.repo.Delete(ctx, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.List.SetNotice(successNotice(mode))
	return s.List.Reload(ctx)
}

func (s *SubscriptionsScreen) RenderRow(subscription model.Subscription) string {
	status := formatting.GetSubscriptionStatusDisplay(subscription.Status)
	return fmt.Sprintf("%s %s → %s | %d/%d sessions | %s | %s",
		status.Emoji,
		formatting.FormatDate(subscription.StartDate),
		formatting.FormatDate(subscription.EndDate),
		subscription.SessionsUsed,
		subscription.SessionsTotal,
		formatting.FormatPriceShort(subscription.PlanPrice, subscription.PlanCurrency),
		status.Label(s.lang))
}
