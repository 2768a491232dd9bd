package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"waten-backend/internal/models"
)

// ProductStore is the file-backed product repository. Every operation
// performs a full read-modify-write of products.json; the mutex
// serializes those cycles so concurrent admin edits cannot lose updates.
type ProductStore struct {
	blob Blob
	mu   sync.Mutex
}

func NewProductStore(blob Blob) *ProductStore {
	return &ProductStore{blob: blob}
}

// productsFile matches the on-disk shape: {"products": [...]}.
type productsFile struct {
	Products []models.Product `json:"products"`
}

func (s *ProductStore) load() ([]models.Product, error) {
	raw, err := s.blob.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}
	var f productsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}
	return f.Products, nil
}

func (s *ProductStore) save(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	raw, err := json.MarshalIndent(productsFile{Products: products}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	return s.blob.Write(raw)
}

func (s *ProductStore) List() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := s.load()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Add appends a new product. Missing fields get the catalog defaults.
func (s *ProductStore) Add(patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:    nextProductID(products),
		Name:  "New Product",
		Price: 0,
		Image: "",
	}
	applyProductPatch(&product, patch)
	if product.Name == "" {
		product.Name = "New Product"
	}

	products = append(products, product)
	if err := s.save(products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update merges the patch onto the stored record. The id is immutable.
func (s *ProductStore) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		applyProductPatch(&products[i], patch)
		if err := s.save(products); err != nil {
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Remove deletes every product with the given id. Removing an id that
// does not exist is not an error.
func (s *ProductStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.save(kept)
}

// applyProductPatch overwrites only the fields present in the patch.
// Prices stay non-negative.
func applyProductPatch(product *models.Product, patch models.ProductPatch) {
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil && *patch.Price >= 0 {
		product.Price = *patch.Price
	}
	if patch.Image != nil {
		product.Image = strings.TrimSpace(*patch.Image)
	}
}

// nextProductID derives an id from the current time, the same scheme the
// storefront has always used. Two adds on the same millisecond get a
// random disambiguator.
func nextProductID(products []models.Product) string {
	id := strconv.FormatInt(time.Now().UnixMilli(), 10)
	for _, p := range products {
		if p.ID == id {
			return id + "-" + shortID()
		}
	}
	return id
}

func shortID() string {
	return uuid.NewString()[:8]
}
