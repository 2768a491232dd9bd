package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"waten-backend/internal/models"
	"waten-backend/internal/store"
)

func ptr[T any](v T) *T { return &v }

func newProductStore(t *testing.T) (*store.ProductStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": []}`), 0o644))
	return store.NewProductStore(store.NewFileBlob(path)), path
}

func TestProductStore_AddDefaults(t *testing.T) {
	s, _ := newProductStore(t)

	product, err := s.Add(models.ProductPatch{})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "New Product", product.Name)
	assert.Equal(t, float64(0), product.Price)
	assert.Equal(t, "", product.Image)

	products, err := s.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, *product, products[0])
}

func TestProductStore_AddUsesProvidedFields(t *testing.T) {
	s, _ := newProductStore(t)

	product, err := s.Add(models.ProductPatch{
		Name:  ptr("Ceramic Mug"),
		Price: ptr(12.5),
		Image: ptr("uploads/mug.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ceramic Mug", product.Name)
	assert.Equal(t, 12.5, product.Price)
	assert.Equal(t, "uploads/mug.jpg", product.Image)
}

func TestProductStore_UniqueIDsOnRapidAdds(t *testing.T) {
	s, _ := newProductStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		product, err := s.Add(models.ProductPatch{})
		require.NoError(t, err)
		assert.False(t, seen[product.ID], "duplicate id %s", product.ID)
		seen[product.ID] = true
	}
}

func TestProductStore_UpdateKeepsID(t *testing.T) {
	s, _ := newProductStore(t)

	created, err := s.Add(models.ProductPatch{Name: ptr("Mug")})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, models.ProductPatch{
		Name:  ptr("Better Mug"),
		Price: ptr(20.0),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Better Mug", updated.Name)
	assert.Equal(t, 20.0, updated.Price)

	products, err := s.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func TestProductStore_UpdateNotFound(t *testing.T) {
	s, _ := newProductStore(t)

	_, err := s.Update("missing", models.ProductPatch{Name: ptr("X")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductStore_RemoveIdempotent(t *testing.T) {
	s, _ := newProductStore(t)

	created, err := s.Add(models.ProductPatch{})
	require.NoError(t, err)

	require.NoError(t, s.Remove(created.ID))
	products, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, products)

	// Second removal is a no-op.
	require.NoError(t, s.Remove(created.ID))
}

func TestProductStore_ListMissingFileFails(t *testing.T) {
	s := store.NewProductStore(store.NewFileBlob(filepath.Join(t.TempDir(), "products.json")))

	_, err := s.List()
	assert.Error(t, err)
}
