package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

// LookupRepository serves the aggregate reference data behind GET
// /data/all. Forms fetch it for their select options; it is cached under a
// single key and invalidated when plans change.
type LookupRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewLookupRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *LookupRepository {
	return &LookupRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

func (r *LookupRepository) All(ctx context.Context) (model.Lookup, error) {
	return query.Fetch(ctx, r.cache, ResourceLookup, "all", func(ctx context.Context) (model.Lookup, error) {
		var lookup model.Lookup
		if err := r.client.Get(ctx, "/data/all", nil, &lookup); err != nil {
			r.logger.Error("Failed to fetch lookup data", zap.Error(err))
			return lookup, fmt.Errorf("get lookup data: %w", err)
		}

		r.logger.Info("Retrieved lookup data",
			zap.Int("students", len(lookup.Students)),
			zap.Int("teachers", len(lookup.Teachers)),
			zap.Int("subjects", len(lookup.Subjects)),
			zap.Int("plans", len(lookup.Plans)))
		return lookup, nil
	})
}
