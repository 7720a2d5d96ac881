// Package catalog provides the product catalog of the shop.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

// AllCategories is the pseudo-category that matches every product.
const AllCategories = "All"

// MaxRating is the highest rating a product can have.
const MaxRating = 5.0

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is an immutable, ordered list of products.
type Catalog struct {
	products []Product
	byID     map[string]int
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// New creates a catalog from the given products. The products are copied.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: append([]Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range c.products {
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Parse parses and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := New(f.Products)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.CatalogInvalid(path, "cannot read catalog file").WithCause(err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, apperrors.CatalogInvalid(path, err.Error())
	}
	return c, nil
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Validate checks that IDs are unique and non-empty, names are set,
// prices are nonnegative and ratings are within [0, MaxRating].
func (c *Catalog) Validate() error {
	if len(c.products) == 0 {
		return fmt.Errorf("catalog has no products")
	}
	seen := make(map[string]bool, len(c.products))
	var problems []string
	for i, p := range c.products {
		switch {
		case strings.TrimSpace(p.ID) == "":
			problems = append(problems, fmt.Sprintf("product %d: missing id", i+1))
		case seen[p.ID]:
			problems = append(problems, fmt.Sprintf("product %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			problems = append(problems, fmt.Sprintf("product %q: missing name", p.ID))
		}
		if p.Price < 0 {
			problems = append(problems, fmt.Sprintf("product %q: negative price", p.ID))
		}
		if p.Rating < 0 || p.Rating > MaxRating {
			problems = append(problems, fmt.Sprintf("product %q: rating %.1f out of range", p.ID, p.Rating))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with the given ID.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Lookup is like Get but returns a not-found error for unknown IDs.
func (c *Catalog) Lookup(id string) (Product, error) {
	p, ok := c.Get(id)
	if !ok {
		return Product{}, apperrors.ProductNotFound(id)
	}
	return p, nil
}

// Featured returns the featured products.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns the products in category. AllCategories and the
// empty string return every product.
func (c *Catalog) ByCategory(category string) []Product {
	if category == "" || category == AllCategories {
		return c.All()
	}
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns AllCategories followed by each product category in
// first-seen order.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// HasCategory reports whether category is one of Categories().
func (c *Catalog) HasCategory(category string) bool {
	for _, cat := range c.Categories() {
		if cat == category {
			return true
		}
	}
	return false
}
