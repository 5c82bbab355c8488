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

// HomeworkScreen is the admin homework list plus its CRUD dialog.
type HomeworkScreen struct {
	List *ListScreen[model.Homework, repository.HomeworkFilter]
	Form *forms.Form[forms.HomeworkValues]

	repo *repository.HomeworkRepository
	lang string
}

func NewHomeworkScreen(repo *repository.HomeworkRepository, lang string, logger *zap.Logger) *HomeworkScreen {
	return &HomeworkScreen{
		List: NewListScreen("homework", repository.HomeworkFilter{}, repo.List, logger),
		Form: forms.New[forms.HomeworkValues](logger),
		repo: repo,
		lang: lang,
	}
}

func (s *HomeworkScreen) OpenCreate() {
	s.Form.OpenCreate(forms.HomeworkValues{})
}

func (s *HomeworkScreen) OpenEdit(homework model.Homework) {
	s.Form.OpenEdit(homework.ID, forms.HomeworkValuesFrom(homework))
}

func (s *HomeworkScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *HomeworkScreen) Cancel() {
	s.Form.Close()
}

func (s *HomeworkScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.HomeworkValues) error {
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

func (s *HomeworkScreen) RenderRow(homework model.Homework) string {
	status := formatting.GetHomeworkStatusDisplay(homework.Status)
	row := fmt.Sprintf("%s %s | due %s | %s",
		status.Emoji,
		homework.Title,
		formatting.FormatDate(homework.DueDate),
		status.Label(s.lang))
	if homework.Grade != nil {
		row += fmt.Sprintf(" | grade %.1f", *homework.Grade)
	}
	return row
}
