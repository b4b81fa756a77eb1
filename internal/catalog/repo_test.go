package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaveenSky123/manaraitubazaar/pkg/config"
	"github.com/NaveenSky123/manaraitubazaar/pkg/db"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
)

func setupCatalogTestRepo(t *testing.T) *GormRepository {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		DSN:    "file::memory:?cache=shared",
		Driver: "sqlite",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	repo, err := NewGormRepository(client)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestGormRepositorySeedsEmptyTableOnce(t *testing.T) {
	repo := setupCatalogTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx, SeedProducts()))
	// Re-running against a populated table must not duplicate rows.
	require.NoError(t, repo.EnsureSeeded(ctx, SeedProducts()))

	products, err := repo.ListByCategories(ctx, enums.ProductCategoryVegetables)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestGormRepositoryListsCategoriesInDisplayOrder(t *testing.T) {
	repo := setupCatalogTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeeded(ctx, SeedProducts()))

	products, err := repo.ListByCategories(ctx, enums.ProductCategoryFruits, enums.ProductCategoryFlowers)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].Position, products[i].Position)
	}
	for _, p := range products {
		assert.Contains(t, []enums.ProductCategory{enums.ProductCategoryFruits, enums.ProductCategoryFlowers}, p.Category)
	}
}

func TestGormRepositoryFindByID(t *testing.T) {
	repo := setupCatalogTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeeded(ctx, SeedProducts()))

	product, err := repo.FindByID(ctx, "tomato")
	require.NoError(t, err)
	assert.Equal(t, "Tomato", product.Name)
	assert.Equal(t, "టమాటా", product.NameTE)
	assert.Equal(t, enums.UnitKg, product.Unit)

	_, err = repo.FindByID(ctx, "no-such-product")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
