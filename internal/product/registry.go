package product

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Rajchodisetti/theme-engine/internal/config"
)

// ErrUnknownProduct is the one data problem that propagates as an error: a
// product name absent from the registry indicates a config mistake, not a
// data gap.
var ErrUnknownProduct = errors.New("unknown product")

// Registry answers product-level questions from the loaded configs.
type Registry struct {
	products    config.Products
	themes      config.Themes
	constraints config.Constraints
}

func NewRegistry(products config.Products, themes config.Themes, constraints config.Constraints) *Registry {
	return &Registry{products: products, themes: themes, constraints: constraints}
}

// Products returns all configured product names, sorted.
func (r *Registry) Products() []string {
	names := make([]string, 0, len(r.products.Products))
	for name := range r.products.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemesFor returns the theme universe of a product.
func (r *Registry) ThemesFor(product string) ([]string, error) {
	themes, ok := r.products.Products[product]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
	}
	return themes, nil
}

// Meta returns optional display metadata; absent metadata is empty, not an
// error.
func (r *Registry) Meta(product string) config.ProductMeta {
	return r.products.Meta[product]
}

// ConstraintFor resolves a theme to its constraint ID and risk scores,
// defaulting per the config rules when unmapped.
func (r *Registry) ConstraintFor(theme string) (id string, health, breakRisk float64) {
	id = r.themes.ConstraintFor(theme)
	health, breakRisk = r.constraints.Lookup(id)
	return id, health, breakRisk
}
