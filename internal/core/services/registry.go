package services

import (
	"github.com/srgjo27/trip_planner/internal/core/domain"
)

// Registry is the ordered, read-only set of bookable categories. The order
// defines both the selection list and index lookups.
type Registry struct {
	variants []domain.Category
}

func NewRegistry(variants ...domain.Category) *Registry {
	v := make([]domain.Category, len(variants))
	copy(v, variants)

	return &Registry{variants: v}
}

// DefaultRegistry registers Hotel, Flight, Tour, Restaurant and CarRental in that order.
func DefaultRegistry() *Registry {
	return NewRegistry(domain.Categories()...)
}

func (r *Registry) Count() int {
	return len(r.variants)
}

// Variants returns the registered categories in order.
func (r *Registry) Variants() []domain.Category {
	v := make([]domain.Category, len(r.variants))
	copy(v, r.variants)

	return v
}

func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.variants))
	for _, v := range r.variants {
		labels = append(labels, v.Label())
	}

	return labels
}

func (r *Registry) VariantAt(index int) (domain.Category, error) {
	if index < 0 || index >= len(r.variants) {
		return 0, &domain.IndexOutOfRangeError{Index: index, Count: len(r.variants)}
	}

	return r.variants[index], nil
}

// IndexOf returns the position of a category, or -1 when it is not registered.
func (r *Registry) IndexOf(c domain.Category) int {
	for i, v := range r.variants {
		if v == c {
			return i
		}
	}

	return -1
}

// PriceList prices one day of every registered category, in registry order.
func (r *Registry) PriceList() []domain.PriceEntry {
	entries := make([]domain.PriceEntry, 0, len(r.variants))
	for _, v := range r.variants {
		entries = append(entries, domain.PriceEntry{
			Category:   v,
			Label:      v.Label(),
			CostPerDay: v.Cost(1),
		})
	}

	return entries
}
