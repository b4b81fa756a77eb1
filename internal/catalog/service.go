package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/NaveenSky123/manaraitubazaar/pkg/db/models"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	pkgerrors "github.com/NaveenSky123/manaraitubazaar/pkg/errors"
)

// Service exposes catalogue reads for the storefront.
type Service interface {
	Tabs(ctx context.Context) []Tab
	ByTab(ctx context.Context, tabID string) ([]models.Product, error)
	ByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error)
	ByID(ctx context.Context, id string) (*models.Product, error)
}

type service struct {
	repo Repository
}

// NewService constructs a catalogue service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Tabs(ctx context.Context) []Tab {
	return Tabs()
}

func (s *service) ByTab(ctx context.Context, tabID string) ([]models.Product, error) {
	tab, ok := TabByID(tabID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown tab %q", tabID))
	}
	products, err := s.repo.ListByCategories(ctx, tab.Categories...)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalogue")
	}
	return products, nil
}

func (s *service) ByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	if !category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", category))
	}
	products, err := s.repo.ListByCategories(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading catalogue")
	}
	return products, nil
}

func (s *service) ByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return product, nil
}
