package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type HomeworkRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewHomeworkRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *HomeworkRepository {
	return &HomeworkRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type HomeworkFilter struct {
	Search    string
	Status    model.HomeworkStatus
	StudentID int64
	SubjectID int64
	Page      int
	PerPage   int
}

func (f HomeworkFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search).
		Str("status", string(f.Status)).
		ID("student_id", f.StudentID).
		ID("subject_id", f.SubjectID)
}

func (f HomeworkFilter) WithPage(page int) HomeworkFilter {
	f.Page = page
	return f
}

type HomeworkInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	StudentID   int64  `json:"student_id"`
	TeacherID   int64  `json:"teacher_id"`
	SubjectID   int64  `json:"subject_id"`
}

func (r *HomeworkRepository) List(ctx context.Context, filter HomeworkFilter) (model.Page[model.Homework], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceHomework, params.CacheKey(), func(ctx context.Context) (model.Page[model.Homework], error) {
		page, err := api.GetPage[model.Homework](ctx, r.client, "/homework", "homework", params)
		if err != nil {
			r.logger.Error("Failed to fetch homework",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list homework: %w", err)
		}

		r.logger.Info("Retrieved homework",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *HomeworkRepository) Create(ctx context.Context, input HomeworkInput) (*model.Homework, error) {
	var homework model.Homework
	if err := r.client.Post(ctx, "/homework", input, &homework); err != nil {
		r.logger.Error("Failed to create homework",
			zap.String("title", input.Title),
			zap.Error(err))
		return nil, fmt.Errorf("create homework: %w", err)
	}

	r.cache.Invalidate(ResourceHomework)
	r.logger.Info("Homework created", zap.Int64("homework_id", homework.ID))
	return &homework, nil
}

func (r *HomeworkRepository) Update(ctx context.Context, id int64, input HomeworkInput) (*model.Homework, error) {
	var homework model.Homework
	if err := r.client.Put(ctx, fmt.Sprintf("/homework/%d", id), input, &homework); err != nil {
		r.logger.Error("Failed to update homework",
			zap.Int64("homework_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update homework: %w", err)
	}

	r.cache.Invalidate(ResourceHomework)
	r.logger.Info("Homework updated", zap.Int64("homework_id", id))
	return &homework, nil
}

func (r *HomeworkRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/homework/%d", id)); err != nil {
		r.logger.Error("Failed to delete homework",
			zap.Int64("homework_id", id),
			zap.Error(err))
		return fmt.Errorf("delete homework: %w", err)
	}

	r.cache.Invalidate(ResourceHomework)
	r.logger.Info("Homework deleted", zap.Int64("homework_id", id))
	return nil
}
