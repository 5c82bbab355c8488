package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type SubscriptionRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewSubscriptionRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type SubscriptionFilter struct {
	Search     string
	Status     model.SubscriptionStatus
	StudentID  int64
	PlanID     int64
	ActiveOnly bool // the active-subscriptions screen
	Page       int
	PerPage    int
}

func (f SubscriptionFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search).
		Str("status", string(f.Status)).
		ID("student_id", f.StudentID).
		ID("plan_id", f.PlanID).
		Bool("active", f.ActiveOnly)
}

func (f SubscriptionFilter) WithPage(page int) SubscriptionFilter {
	f.Page = page
	return f
}

type SubscriptionInput struct {
	StudentID int64  `json:"student_id"`
	PlanID    int64  `json:"plan_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *SubscriptionRepository) List(ctx context.Context, filter SubscriptionFilter) (model.Page[model.Subscription], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceSubscriptions, params.CacheKey(), func(ctx context.Context) (model.Page[model.Subscription], error) {
		page, err := api.GetPage[model.Subscription](ctx, r.client, "/subscriptions", "subscriptions", params)
		if err != nil {
			r.logger.Error("Failed to fetch subscriptions",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list subscriptions: %w", err)
		}

		r.logger.Info("Retrieved subscriptions",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *SubscriptionRepository) Create(ctx context.Context, input SubscriptionInput) (*model.Subscription, error) {
	var subscription model.Subscription
	if err := r.client.Post(ctx, "/subscriptions", input, &subscription); err != nil {
		r.logger.Error("Failed to create subscription",
			zap.Int64("student_id", input.StudentID),
			zap.Int64("plan_id", input.PlanID),
			zap.Error(err))
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	r.cache.Invalidate(ResourceSubscriptions)
	r.logger.Info("Subscription created",
		zap.Int64("subscription_id", subscription.ID),
		zap.Int64("student_id", input.StudentID))
	return &subscription, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, id int64, input SubscriptionInput) (*model.Subscription, error) {
	var subscription model.Subscription
	if err := r.client.Put(ctx, fmt.Sprintf("/subscriptions/%d", id), input, &subscription); err != nil {
		r.logger.Error("Failed to update subscription",
			zap.Int64("subscription_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update subscription: %w", err)
	}

	r.cache.Invalidate(ResourceSubscriptions)
	r.logger.Info("Subscription updated", zap.Int64("subscription_id", id))
	return &subscription, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/subscriptions/%d", id)); err != nil {
		r.logger.Error("Failed to delete subscription",
			zap.Int64("subscription_id", id),
			zap.Error(err))
		return fmt.Errorf("delete subscription: %w", err)
	}

	r.cache.Invalidate(ResourceSubscriptions)
	r.logger.Info("Subscription deleted", zap.Int64("subscription_id", id))
	return nil
}
