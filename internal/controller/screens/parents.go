package screens

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/forms"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// ParentsScreen is the admin parents list plus its CRUD dialog.
type ParentsScreen struct {
	List *ListScreen[model.Parent, repository.ParentFilter]
	Form *forms.Form[forms.ParentValues]

	repo *repository.ParentRepository
}

func NewParentsScreen(repo *repository.ParentRepository, logger *zap.Logger) *ParentsScreen {
	return &ParentsScreen{
		List: NewListScreen("parents", repository.ParentFilter{}, repo.List, logger),
		Form: forms.New[forms.ParentValues](logger),
		repo: repo,
	}
}

func (s *ParentsScreen) OpenCreate() {
	s.Form.OpenCreate(forms.ParentValues{})
}

func (s *ParentsScreen) OpenEdit(parent model.Parent) {
	s.Form.OpenEdit(parent.ID, forms.ParentValuesFrom(parent))
}

func (s *ParentsScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *ParentsScreen) Cancel() {
	s.Form.Close()
}

func (s *ParentsScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.ParentValues) error {
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

func (s *ParentsScreen) RenderRow(parent model.Parent) string {
	return fmt.Sprintf("👤 %s | %s | %s%s | %d students",
		parent.Name,
		parent.Email,
		parent.CountryCode,
		parent.Phone,
		len(parent.Students))
}
