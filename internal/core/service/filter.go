package service

import (
	"strings"

	"github.com/niksmo/sportshop/internal/core/domain"
)

// Family selectors match every sub-category by substring; any other
// selector matches the category tag literally.
const (
	selectorHomme = "homme"
	selectorFemme = "femme"
)

// FilterByCategory returns the products matching the selector, in
// original relative order. An empty selector disables filtering.
// Zero matches yield an empty slice, not an error.
func FilterByCategory(ps []domain.Product, selector string) []domain.Product {
	if selector == "" {
		return ps
	}

	match := func(category string) bool { return category == selector }
	if selector == selectorHomme || selector == selectorFemme {
		match = func(category string) bool {
			return strings.Contains(category, selector)
		}
	}

	filtered := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if match(p.Category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
