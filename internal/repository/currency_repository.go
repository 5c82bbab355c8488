package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type CurrencyRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewCurrencyRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *CurrencyRepository {
	return &CurrencyRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type CurrencyFilter struct {
	Search  string
	Page    int
	PerPage int
}

func (f CurrencyFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search)
}

func (f CurrencyFilter) WithPage(page int) CurrencyFilter {
	f.Page = page
	return f
}

type CurrencyInput struct {
	Code         string  `json:"code"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
	IsDefault    bool    `json:"is_default"`
	NameAr       string  `json:"name_ar"`
	NameEn       string  `json:"name_en"`
}

func (r *CurrencyRepository) List(ctx context.Context, filter CurrencyFilter) (model.Page[model.Currency], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceCurrencies, params.CacheKey(), func(ctx context.Context) (model.Page[model.Currency], error) {
		page, err := api.GetPage[model.Currency](ctx, r.client, "/finances/currencies", "currencies", params)
		if err != nil {
			r.logger.Error("Failed to fetch currencies",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list currencies: %w", err)
		}

		r.logger.Info("Retrieved currencies",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *CurrencyRepository) Create(ctx context.Context, input CurrencyInput) (*model.Currency, error) {
	var currency model.Currency
	if err := r.client.Post(ctx, "/finances/currencies", input, &currency); err != nil {
		r.logger.Error("Failed to create currency",
			zap.String("code", input.Code),
			zap.Error(err))
		return nil, fmt.Errorf("create currency: %w", err)
	}

	r.cache.Invalidate(ResourceCurrencies)
	r.logger.Info("Currency created",
		zap.Int64("currency_id", currency.ID),
		zap.String("code", currency.Code))
	return &currency, nil
}

func (r *CurrencyRepository) Update(ctx context.Context, id int64, input CurrencyInput) (*model.Currency, error) {
	var currency model.Currency
	if err := r.client.Put(ctx, fmt.Sprintf("/finances/currencies/%d", id), input, &currency); err != nil {
		r.logger.Error("Failed to update currency",
			zap.Int64("currency_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update currency: %w", err)
	}

	r.cache.Invalidate(ResourceCurrencies)
	r.logger.Info("Currency updated", zap.Int64("currency_id", id))
	return &currency, nil
}

func (r *CurrencyRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/finances/currencies/%d", id)); err != nil {
		r.logger.Error("Failed to delete currency",
			zap.Int64("currency_id", id),
			zap.Error(err))
		return fmt.Errorf("delete currency: %w", err)
	}

	r.cache.Invalidate(ResourceCurrencies)
	r.logger.Info("Currency deleted", zap.Int64("currency_id", id))
	return nil
}
