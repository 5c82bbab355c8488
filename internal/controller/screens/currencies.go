package screens

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ahmedgamal1254/lms-portal/internal/controller/forms"
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// CurrenciesScreen is the finance currencies list plus its CRUD dialog.
type CurrenciesScreen struct {
	List *ListScreen[model.Currency, repository.CurrencyFilter]
	Form *forms.Form[forms.CurrencyValues]

	repo *repository.CurrencyRepository
	lang string
}

func NewCurrenciesScreen(repo *repository.CurrencyRepository, lang string, logger *zap.Logger) *CurrenciesScreen {
	return &CurrenciesScreen{
		List: NewListScreen("currencies", repository.CurrencyFilter{}, repo.List, logger),
		Form: forms.New[forms.CurrencyValues](logger),
		repo: repo,
		lang: lang,
	}
}

func (s *CurrenciesScreen) OpenCreate() {
	s.Form.OpenCreate(forms.CurrencyValues{ExchangeRate: 1})
}

func (s *CurrenciesScreen) OpenEdit(currency model.Currency) {
	s.Form.OpenEdit(currency.ID, forms.CurrencyValuesFrom(currency))
}

func (s *CurrenciesScreen) OpenDelete(id int64) {
	s.Form.OpenDelete(id)
}

func (s *CurrenciesScreen) Cancel() {
	s.Form.Close()
}

func (s *CurrenciesScreen) Submit(ctx context.Context) error {
	mode := s.Form.Mode()

	err := s.Form.Submit(ctx, func(ctx context.Context, mode forms.Mode, id int64, values forms.CurrencyValues) error {
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

func (s *CurrenciesScreen) RenderRow(currency model.Currency) string {
	marker := ""
	if currency.IsDefault {
		marker = " ⭐"
	}
	return fmt.Sprintf("%s %s (%s) | rate %.4f%s",
		currency.Symbol,
		currency.Name(s.lang),
		currency.Code,
		currency.ExchangeRate,
		marker)
}
