package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type ExamRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewExamRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *ExamRepository {
	return &ExamRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// ExamFilter is the filter state of the exams screen, serialized as query
// parameters on every fetch.
type ExamFilter struct {
	Search    string
	Status    model.ExamStatus
	SubjectID int64
	TeacherID int64
	DateFrom  string
	DateTo    string
	Page      int
	PerPage   int
}

func (f ExamFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search).
		Str("status", string(f.Status)).
		ID("subject_id", f.SubjectID).
		ID("teacher_id", f.TeacherID).
		Str("date_from", f.DateFrom).
		Str("date_to", f.DateTo)
}

// WithPage returns a copy of the filter pointing at another page.
func (f ExamFilter) WithPage(page int) ExamFilter {
	f.Page = page
	return f
}

// ExamInput is the create/edit form payload.
type ExamInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	SubjectID   int64   `json:"subject_id"`
	TeacherID   int64   `json:"teacher_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	Duration    int     `json:"duration"`
	TotalMarks  float64 `json:"total_marks"`
}

// List fetches one page of exams, served from cache when the same filter
// tuple was already fetched.
func (r *ExamRepository) List(ctx context.Context, filter ExamFilter) (model.Page[model.Exam], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceExams, params.CacheKey(), func(ctx context.Context) (model.Page[model.Exam], error) {
		page, err := api.GetPage[model.Exam](ctx, r.client, "/exams", "exams", params)
		if err != nil {
			r.logger.Error("Failed to fetch exams",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list exams: %w", err)
		}

		r.logger.Info("Retrieved exams",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage),
			zap.Int("total", page.Meta.Total))
		return page, nil
	})
}

// Create creates an exam and invalidates the cached collection.
func (r *ExamRepository) Create(ctx context.Context, input ExamInput) (*model.Exam, error) {
	var exam model.Exam
	if err := r.client.Post(ctx, "/exams", input, &exam); err != nil {
		r.logger.Error("Failed to create exam",
			zap.String("title", input.Title),
			zap.Error(err))
		return nil, fmt.Errorf("create exam: %w", err)
	}

	r.cache.Invalidate(ResourceExams)
	r.logger.Info("Exam created",
		zap.Int64("exam_id", exam.ID),
		zap.String("title", exam.Title))
	return &exam, nil
}

// Update updates an exam and invalidates the cached collection.
func (r *ExamRepository) Update(ctx context.Context, id int64, input ExamInput) (*model.Exam, error) {
	var exam model.Exam
	if err := r.client.Put(ctx, fmt.Sprintf("/exams/%d", id), input, &exam); err != nil {
		r.logger.Error("Failed to update exam",
			zap.Int64("exam_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("update exam: %w", err)
	}

	r.cache.Invalidate(ResourceExams)
	r.logger.Info("Exam updated", zap.Int64("exam_id", id))
	return &exam, nil
}

// Delete deletes an exam and invalidates the cached collection.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/exams/%d", id)); err != nil {
		r.logger.Error("Failed to delete exam",
			zap.Int64("exam_id", id),
			zap.Error(err))
		return fmt.Errorf("delete exam: %w", err)
	}

	r.cache.Invalidate(ResourceExams)
	r.logger.Info("Exam deleted", zap.Int64("exam_id", id))
	return nil
}
