package screens

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/formatting"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// StudentScreen covers the student-role views: own exams, own homework
// and the profile form.
type StudentScreen struct {
	Exams    *ListScreen[model.Exam, repository.StudentExamFilter]
	Homework *ListScreen[model.Homework, repository.StudentHomeworkFilter]

	mu      sync.Mutex
	profile model.StudentProfile

	repo *repository.StudentRepository
	lang string
}

func NewStudentScreen(repo *repository.StudentRepository, lang string, logger *zap.Logger) *StudentScreen {
	return &StudentScreen{
		Exams:    NewListScreen("student_exams", repository.StudentExamFilter{}, repo.Exams, logger),
		Homework: NewListScreen("student_homework", repository.StudentHomeworkFilter{}, repo.Homework, logger),
		repo:     repo,
		lang:     lang,
	}
}

// SubmitExam hands in the answers, then re-fetches the exam list so the
// submission shows up.
func (s *StudentScreen) SubmitExam(ctx context.Context, examID int64, answers []repository.ExamAnswer) (*model.ExamSubmission, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers to submit")
	}

	submission, err := s.repo.SubmitExam(ctx, examID, answers)
	if err != nil {
		return nil, err
	}

	s.Exams.SetNotice("✅ Exam submitted")
	if err := s.Exams.Reload(ctx); err != nil {
		return submission, err
	}
	return submission, nil
}

// SubmitHomework uploads the answer text, then re-fetches the list.
func (s *StudentScreen) SubmitHomework(ctx context.Context, homeworkID int64, answer string) error {
	if answer == "" {
		return fmt.Errorf("answer must not be empty")
	}

	if err := s.repo.SubmitHomework(ctx, homeworkID, answer); err != nil {
		return err
	}

	s.Homework.SetNotice("✅ Homework submitted")
	return s.Homework.Reload(ctx)
}

// LoadProfile fetches the profile into the screen.
func (s *StudentScreen) LoadProfile(ctx context.Context) (model.StudentProfile, error) {
	profile, err := s.repo.Profile(ctx)
	if err != nil {
		return model.StudentProfile{}, err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return profile, nil
}

// SaveProfile writes the editable subset back.
func (s *StudentScreen) SaveProfile(ctx context.Context, input repository.ProfileInput) error {
	profile, err := s.repo.UpdateProfile(ctx, input)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *StudentScreen) Profile() model.StudentProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// RenderExamRow renders one row of the student exam list, including the
// result once graded.
func (s *StudentScreen) RenderExamRow(exam model.Exam) string {
	status := formatting.GetExamStatusDisplay(exam.Status)
	row := fmt.Sprintf("%s %s | %s %s | %s",
		status.Emoji,
		exam.Title,
		formatting.FormatDate(exam.Date),
		exam.StartTime,
		status.Label(s.lang))
	if exam.Submission != nil {
		row += fmt.Sprintf(" | %.1f/%.0f (%.0f%%)",
			exam.Submission.ObtainedMarks,
			exam.TotalMarks,
			exam.Submission.Percentage)
	}
	return row
}
