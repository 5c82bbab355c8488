package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type PlanRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewPlanRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *PlanRepository {
	return &PlanRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type PlanFilter struct {
	Search  string
	Page    int
	PerPage int
}

func (f PlanFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search)
}

func (f PlanFilter) WithPage(page int) PlanFilter {
	f.Page = page
	return f
}

type PlanInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SessionsCount int     `json:"sessions_count"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
}

func (r *PlanRepository) List(ctx context.Context, filter PlanFilter) (model.Page[model.Plan], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourcePlans, params.CacheKey(), func(ctx context.Context) (model.Page[model.Plan], error) {
		page, err := api.GetPage[model.Plan](ctx, r.client, "/plans", "plans", params)
		if err != nil {
			r.logger.Error("Failed to fetch plans",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list plans: %w", err)
		}

		r.logger.Info("Retrieved plans",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *PlanRepository) Create(ctx context.Context, input PlanInput) (*model.Plan, error) {
	var plan model.Plan
	if err := r.client.Post(ctx, "/plans", input, &plan); err != nil {
		r.logger.Error("Failed to create plan",
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, fmt.Errorf("create plan: %w", err)
	}

	r.cache.Invalidate(ResourcePlans)
	// Plans also feed form selects through the lookup data.
	r.cache.Invalidate(ResourceLookup)
	r.logger.Info("Plan created", zap.Int64("plan_id", plan.ID))
	return &plan, nil
}

func (r *PlanRepository) Update(ctx context.Context, id int64, input PlanInput) (*model.Plan, error) {
	var plan model.Plan
	if err := r.client.Put(ctx, fmt.Sprintf("/plans/%d", id), input, &plan); err != nil {
		r.logger.Error("Failed to update plan",
			zap.Int64("plan_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update plan: %w", err)
	}

	r.cache.Invalidate(ResourcePlans)
	r.cache.Invalidate(ResourceLookup)
	r.logger.Info("Plan updated", zap.Int64("plan_id", id))
	return &plan, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/plans/%d", id)); err != nil {
		r.logger.Error("Failed to delete plan",
			zap.Int64("plan_id", id),
			zap.Error(err))
		return fmt.Errorf("delete plan: %w", err)
	}

	r.cache.Invalidate(ResourcePlans)
	r.cache.Invalidate(ResourceLookup)
	r.logger.Info("Plan deleted", zap.Int64("plan_id", id))
	return nil
}
