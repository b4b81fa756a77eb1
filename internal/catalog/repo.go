package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/NaveenSky123/manaraitubazaar/pkg/db"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db/models"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	"gorm.io/gorm"
)

// Repository reads catalogue entries. Listings preserve the curated display
// order; unavailable products stay listed so the storefront can mark them
// non-orderable.
type Repository interface {
	ListByCategories(ctx context.Context, categories ...enums.ProductCategory) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// ErrProductNotFound signals an unknown product id.
var ErrProductNotFound = errors.New("catalog: product not found")

// MemoryRepository serves the catalogue from an in-process slice. It backs
// deployments that run without a database.
type MemoryRepository struct {
	products []models.Product
}

func NewMemoryRepository(products []models.Product) *MemoryRepository {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &MemoryRepository{products: sorted}
}

func (r *MemoryRepository) ListByCategories(ctx context.Context, categories ...enums.ProductCategory) ([]models.Product, error) {
	wanted := make(map[enums.ProductCategory]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}
	var out []models.Product
	for _, p := range r.products {
		if _, ok := wanted[p.Category]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// GormRepository serves the catalogue from the shared database.
type GormRepository struct {
	client *db.Client
}

func NewGormRepository(client *db.Client) (*GormRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &GormRepository{client: client}, nil
}

// Migrate ensures the products table exists.
func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.client.DB().WithContext(ctx).AutoMigrate(&models.Product{})
}

// EnsureSeeded loads the default catalogue when the table is empty.
func (r *GormRepository) EnsureSeeded(ctx context.Context, products []models.Product) error {
	var count int64
	if err := r.client.DB().WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := r.client.DB().WithContext(ctx).Create(products).Error; err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}
	return nil
}

func (r *GormRepository) ListByCategories(ctx context.Context, categories ...enums.ProductCategory) ([]models.Product, error) {
	var out []models.Product
	err := r.client.DB().WithContext(ctx).
		Where("category IN ?", categories).
		Order("position ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return out, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.client.DB().WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &product, nil
}
