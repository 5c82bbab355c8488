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

// SessionsScreen is the admin sessions list. Sessions are created (singly
// or in bulk) and deleted, never edited in place.
type SessionsScreen struct {
	List *ListScreen[model.Session, repository.SessionFilter]
	Form *forms.Form[forms.SessionValues]

	repo *repository.SessionRepository
	lang string
}

func NewSessionsScreen(repo *repository.SessionRepository, lang string, logger *zap.Logger) *SessionsScreen {
	return &SessionsScreen{
		List: NewListScreen("sessions", repository.SessionFilter{}, repo.List, logger),
		Form: forms.New[forms.SessionValues](logger),
		repo: repo,
		lang: lang,
	}
}

func (s *SessionsScreen) OpenCreate() {
	s.Form.OpenCreate(forms.SessionValues{})
}

func (s *SessionsScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *SessionsScreen) Cancel() {
	s.Form.Close()
}

func (s *SessionsScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.SessionValues) error {
		switch mode {
		case forms.ModeCreate:
			_, err := s.repo.Create(ctx, values.Input())
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

// SubmitBulk schedules a whole series at once. The dates come from a
// repeat picker, each one validated like the single form.
func (s *SessionsScreen) SubmitBulk(ctx context.Context, values forms.SessionValues, dates []string) error {
	if len(dates) == 0 {
		return fmt.Errorf("no dates selected")
	}

	inputs := make([]repository.SessionInput, 0, len(dates))
	for _, date := range dates {
		input := values.Input()
		input.Date = date
		inputs = append(inputs, input)
	}

	if _, err := s.repo.CreateBulk(ctx, inputs); err != nil {
		return err
	}

	s.List.SetNotice(fmt.Sprintf("✅ %d sessions scheduled", len(inputs)))
	return s.List.Reload(ctx)
}

// Attendance loads the attendance records of one session row.
func (s *SessionsScreen) Attendance(ctx context.Context, sessionID int64) ([]model.Attendance, error) {
	return s.repo.Attendance(ctx, sessionID)
}

func (s *SessionsScreen) RenderRow(session model.Session) string {
	status := formatting.GetSessionStatusDisplay(session.Status)
	return fmt.Sprintf("%s %s | %s %s | %s | %s",
		status.Emoji,
		session.Title,
		formatting.FormatDate(session.Date),
		formatting.FormatTimeRange(session.StartTime, session.EndTime),
		formatting.FormatDuration(session.Duration),
		status.Label(s.lang))
}
