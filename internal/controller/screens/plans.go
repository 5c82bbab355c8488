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

// PlansScreen is the admin plans list plus its CRUD dialog.
type PlansScreen struct {
	List *ListScreen[model.Plan, repository.PlanFilter]
	Form *forms.Form[forms.PlanValues]

	repo *repository.PlanRepository
}

func NewPlansScreen(repo *repository.PlanRepository, logger *zap.Logger) *PlansScreen {
	return &PlansScreen{
		List: NewListScreen("plans", repository.PlanFilter{}, repo.List, logger),
		Form: forms.New[forms.PlanValues](logger),
		repo: repo,
	}
}

func (s *PlansScreen) OpenCreate() {
	s.Form.OpenCreate(forms.PlanValues{})
}

func (s *PlansScreen) OpenEdit(plan model.Plan) {
	s.Form.OpenEdit(plan.ID, forms.PlanValuesFrom(plan))
}

func (s *PlansScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *PlansScreen) Cancel() {
	s.Form.Close()
}

func (s *PlansScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.PlanValues) error {
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

func (s *PlansScreen) RenderRow(plan model.Plan) string {
	return fmt.Sprintf("📦 %s | %d sessions | %s",
		plan.Name,
		plan.SessionsCount,
		formatting.FormatPriceShort(plan.Price, plan.Currency))
}
