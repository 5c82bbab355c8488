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

// ExamsScreen is the admin exams list plus its CRUD dialog.
type ExamsScreen struct {
	List *ListScreen[model.Exam, repository.ExamFilter]
	Form *forms.Form[forms.ExamValues]

	repo *repository.ExamRepository
	lang string
}

func NewExamsScreen(repo *repository.ExamRepository, lang string, logger *zap.Logger) *ExamsScreen {
	return &ExamsScreen{
		List: NewListScreen("exams", repository.ExamFilter{}, repo.List, logger),
		Form: forms.New[forms.ExamValues](logger),
		repo: repo,
		lang: lang,
	}
}

func (s *ExamsScreen) OpenCreate() {
	s.Form.OpenCreate(forms.ExamValues{})
}

func (s *ExamsScreen) OpenEdit(exam model.Exam) {
	s.Form.OpenEdit(exam.ID, forms.ExamValuesFrom(exam))
}

// OpenDelete opens the confirmation dialog; nothing is sent until the
// user confirms.
func (s *ExamsScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *ExamsScreen) Cancel() {
	s.Form.Close()
}

// Submit runs the pending dialog action, then re-fetches the list.
func (s *ExamsScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.ExamValues) error {
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

// RenderRow renders one table row.
func (s *ExamsScreen) RenderRow(exam model.Exam) string {
	status := formatting.GetExamStatusDisplay(exam.Status)
	return fmt.Sprintf("%s %s | %s %s | %s | %.0f marks | %s",
		status.Emoji,
		exam.Title,
		formatting.FormatDate(exam.Date),
		exam.StartTime,
		formatting.FormatDuration(exam.Duration),
		exam.TotalMarks,
		status.Label(s.lang))
}

// successNotice is the transient toast after a successful mutation.
func successNotice(mode forms.Mode) string {
	switch mode {
	case forms.ModeCreate:
		return "✅ Created successfully"
	case forms.ModeEdit:
		return "✅ Saved successfully"
	case forms.ModeDelete:
		return "🗑 Deleted successfully"
	default:
		return "✅ Done"
	}
}
