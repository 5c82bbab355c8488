package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type ParentRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewParentRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *ParentRepository {
	return &ParentRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type ParentFilter struct {
	Search  string
	Page    int
	PerPage int
}

func (f ParentFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search)
}

func (f ParentFilter) WithPage(page int) ParentFilter {
	f.Page = page
	return f
}

type ParentInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CountryCode    string  `json:"country_code"`
	WhatsappNumber string  `json:"whatsapp_number"`
	StudentIDs     []int64 `json:"student_ids,omitempty"`
}

func (r *ParentRepository) List(ctx context.Context, filter ParentFilter) (model.Page[model.Parent], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceParents, params.CacheKey(), func(ctx context.Context) (model.Page[model.Parent], error) {
		page, err := api.GetPage[model.Parent](ctx, r.client, "/parents", "parents", params)
		if err != nil {
			r.logger.Error("Failed to fetch parents",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list parents: %w", err)
		}

		r.logger.Info("Retrieved parents",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *ParentRepository) Create(ctx context.Context, input ParentInput) (*model.Parent, error) {
	var parent model.Parent
	if err := r.client.Post(ctx, "/parents", input, &parent); err != nil {
		r.logger.Error("Failed to create parent",
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, fmt.Errorf("create parent: %w", err)
	}

	r.cache.Invalidate(ResourceParents)
	r.logger.Info("Parent created", zap.Int64("parent_id", parent.ID))
	return &parent, nil
}

func (r *ParentRepository) Update(ctx context.Context, id int64, input ParentInput) (*model.Parent, error) {
	var parent model.Parent
	if err := r.client.Put(ctx, fmt.Sprintf("/parents/%d", id), input, &parent); err != nil {
		r.logger.Error("Failed to update parent",
			zap.Int64("parent_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update parent: %w", err)
	}

	r.cache.Invalidate(ResourceParents)
	r.logger.Info("Parent updated", zap.Int64("parent_id", id))
	return &parent, nil
}

func (r *ParentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/parents/%d", id)); err != nil {
		r.logger.Error("Failed to delete parent",
			zap.Int64("parent_id", id),
			zap.Error(err))
		return fmt.Errorf("delete parent: %w", err)
	}

	r.cache.Invalidate(ResourceParents)
	r.logger.Info("Parent deleted", zap.Int64("parent_id", id))
	return nil
}
