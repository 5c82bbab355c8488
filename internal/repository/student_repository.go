package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/query"
)

// StudentRepository covers the student-role endpoints: the student's own
// exams and homework plus the profile.
type StudentRepository struct {
	client *api.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewStudentRepository(client *api.Client, cache *query.Cache, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type StudentExamFilter struct {
	Status  model.ExamStatus
	Page    int
	PerPage int
}

func (f StudentExamFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Str("status", string(f.Status))
}

func (f StudentExamFilter) WithPage(page int) StudentExamFilter {
	f.Page = page
	return f
}

func (r *StudentRepository) Exams(ctx context.Context, filter StudentExamFilter) (model.Page[model.Exam], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceStudentExams, params.CacheKey(), func(ctx context.Context) (model.Page[model.Exam], error) {
		page, err := api.GetPage[model.Exam](ctx, r.client, "/student/exams", "exams", params)
		if err != nil {
			r.logger.Error("Failed to fetch student exams", zap.Error(err))
			return page, fmt.Errorf("list student exams: %w", err)
		}
		return page, nil
	})
}

// ExamAnswer is one answered question in an exam submission.
type ExamAnswer struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmitExam hands in the student's answers for an exam.
func (r *StudentRepository) SubmitExam(ctx context.Context, examID int64, answers []ExamAnswer) (*model.ExamSubmission, error) {
	body := map[string][]ExamAnswer{"answers": answers}

	var submission model.ExamSubmission
	if err := r.client.Post(ctx, fmt.Sprintf("/student/exams/%d/submit", examID), body, &submission); err != nil {
		r.logger.Error("Failed to submit exam",
			zap.Int64("exam_id", examID),
			zap.Error(err))
		return nil, fmt.Errorf("submit exam: %w", err)
	}

	r.cache.Invalidate(ResourceStudentExams)
	r.logger.Info("Exam submitted", zap.Int64("exam_id", examID))
	return &submission, nil
}

type StudentHomeworkFilter struct {
	Status  model.HomeworkStatus
	Page    int
	PerPage int
}

func (f StudentHomeworkFilter) params() *api.Params {
	return api.NewParams().
		Page(f.Page).
		PerPage(f.PerPage).
		Str("status", string(f.Status))
}

func (f StudentHomeworkFilter) WithPage(page int) StudentHomeworkFilter {
	f.Page = page
	return f
}

func (r *StudentRepository) Homework(ctx context.Context, filter StudentHomeworkFilter) (model.Page[model.Homework], error) {
	params := filter.params()
	return query.Fetch(ctx, r.cache, ResourceStudentHW, params.CacheKey(), func(ctx context.Context) (model.Page[model.Homework], error) {
		page, err := api.GetPage[model.Homework](ctx, r.client, "/student/homework", "homework", params)
		if err != nil {
			r.logger.Error("Failed to fetch student homework", zap.Error(err))
			return page, fmt.Errorf("list student homework: %w", err)
		}
		return page, nil
	})
}

// SubmitHomework uploads the student's homework answer text.
func (r *StudentRepository) SubmitHomework(ctx context.Context, homeworkID int64, answer string) error {
	body := map[string]string{"answer": answer}
	if err := r.client.Post(ctx, fmt.Sprintf("/student/homework/%d/submit", homeworkID), body, nil); err != nil {
		r.logger.Error("Failed to submit homework",
			zap.Int64("homework_id", homeworkID),
			zap.Error(err))
		return fmt.Errorf("submit homework: %w", err)
	}

	r.cache.Invalidate(ResourceStudentHW)
	r.logger.Info("Homework submitted", zap.Int64("homework_id", homeworkID))
	return nil
}

// Profile fetches the student profile.
func (r *StudentRepository) Profile(ctx context.Context) (model.StudentProfile, error) {
	return query.Fetch(ctx, r.cache, ResourceProfile, "me", func(ctx context.Context) (model.StudentProfile, error) {
		var profile model.StudentProfile
		if err := r.client.Get(ctx, "/student/profile", nil, &profile); err != nil {
			r.logger.Error("Failed to fetch student profile", zap.Error(err))
			return profile, fmt.Errorf("get student profile: %w", err)
		}
		return profile, nil
	})
}

// ProfileInput is the editable profile subset.
type ProfileInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
}

// UpdateProfile saves the profile and invalidates the cached copy.
func (r *StudentRepository) UpdateProfile(ctx context.Context, input ProfileInput) (model.StudentProfile, error) {
	var profile model.StudentProfile
	if err := r.client.Post(ctx, "/student/profile", input, &profile); err != nil {
		r.logger.Error("Failed to update student profile", zap.Error(err))
		return profile, fmt.Errorf("update student profile: %w", err)
	}

	r.cache.Invalidate(ResourceProfile)
	r.logger.Info("Student profile updated", zap.Int64("student_id", profile.ID))
	return profile, nil
}
