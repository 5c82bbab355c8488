package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

type SessionRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewSessionRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type SessionFilter struct {
	Search    string
	Status    model.SessionStatus
	StudentID int64
	TeacherID int64
	SubjectID int64
	DateFrom  string
	DateTo    string
	Page      int
	PerPage   int
}

func (f SessionFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Search(f.Search).
		Str("status", string(f.Status)).
		ID("student_id", f.StudentID).
		ID("teacher_id", f.TeacherID).
		ID("subject_id", f.SubjectID).
		Str("date_from", f.DateFrom).
		Str("date_to", f.DateTo)
}

func (f SessionFilter) WithPage(page int) SessionFilter {
	f.Page = page
	return f
}

type SessionInput struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	StudentID int64  `json:"student_id"`
	TeacherID int64  `json:"teacher_id"`
	SubjectID int64  `json:"subject_id"`
}

func (r *SessionRepository) List(ctx context.Context, filter SessionFilter) (model.Page[model.Session], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceSessions, params.CacheKey(), func(ctx context.Context) (model.Page[model.Session], error) {
		page, err := api.GetPage[model.Session](ctx, r.client, "/sessions", "sessions", params)
		if err != nil {
			r.logger.Error("Failed to fetch sessions",
				zap.String("filter", params.CacheKey()),
				zap.Error(err))
			return page, fmt.Errorf("list sessions: %w", err)
		}

		r.logger.Info("Retrieved sessions",
			zap.Int("count", len(page.Items)),
			zap.Int("page", page.Meta.CurrentPage))
		return page, nil
	})
}

func (r *SessionRepository) Create(ctx context.Context, input SessionInput) (*model.Session, error) {
	var session model.Session
	if err := r.client.Post(ctx, "/sessions", input, &session); err != nil {
		r.logger.Error("Failed to create session",
			zap.String("title", input.Title),
			zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}

	r.cache.Invalidate(ResourceSessions)
	r.logger.Info("Session created", zap.Int64("session_id", session.ID))
	return &session, nil
}

// CreateBulk schedules a series of sessions in one call.
func (r *SessionRepository) CreateBulk(ctx context.Context, inputs []SessionInput) ([]model.Session, error) {
	body := map[string][]SessionInput{"sessions": inputs}

	var created struct {
		Sessions []model.Session `json:"sessions"`
	}
	if err := r.client.Post(ctx, "/sessions/bulk", body, &created); err != nil {
		r.logger.Error("Failed to create sessions in bulk",
			zap.Int("count", len(inputs)),
			zap.Error(err))
		return nil, fmt.Errorf("create sessions bulk: %w", err)
	}

	r.cache.Invalidate(ResourceSessions)
	r.logger.Info("Sessions created in bulk", zap.Int("count", len(created.Sessions)))
	return created.Sessions, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/sessions/%d", id)); err != nil {
		r.logger.Error("Failed to delete session",
			zap.Int64("session_id", id),
			zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}

	r.cache.Invalidate(ResourceSessions)
	r.logger.Info("Session deleted", zap.Int64("session_id", id))
	return nil
}

// Attendance fetches the attendance records of one session. Not cached:
// it is only viewed from the session detail and changes server-side.
func (r *SessionRepository) Attendance(ctx context.Context, sessionID int64) ([]model.Attendance, error) {
	var data struct {
		Attendance []model.Attendance `json:"attendance"`
	}
	if err := r.client.Get(ctx, fmt.Sprintf("/sessions/%d/attendance", sessionID), nil, &data); err != nil {
		r.logger.Error("Failed to fetch attendance",
			zap.Int64("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("get session attendance: %w", err)
	}
	return data.Attendance, nil
}
