package service_test

import (
	"testing"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByCategory(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "T-Shirt Pro", Category: "homme_tshirt", Price: 50},
		{ID: 2, Name: "Legging Flex", Category: "femme_legging", Price: 40},
		{ID: 3, Name: "Short Run", Category: "homme_short", Price: 30},
		{ID: 4, Name: "Ensemble Yoga", Category: "femme_ensemble", Price: 80},
		{ID: 5, Name: "Veste Zip", Category: "homme_veste", Price: 90},
	}

	t.Run("FamilySelectorHomme", func(t *testing.T) {
		got := service.FilterByCategory(products, "homme")

		require.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Equal(t, int64(5), got[2].ID)
	})

	t.Run("FamilySelectorFemme", func(t *testing.T) {
		got := service.FilterByCategory(products, "femme")

		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(4), got[1].ID)
	})

	t.Run("ExactSelector", func(t *testing.T) {
		got := service.FilterByCategory(products, "homme_tshirt")

		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("NoMatchYieldsEmptySlice", func(t *testing.T) {
		got := service.FilterByCategory(products, "enfant")

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("UnknownSelectorMatchesLiterally", func(t *testing.T) {
		ps := append(products, domain.Product{
			ID: 6, Name: "Mystery", Category: "xyz", Price: 10,
		})

		got := service.FilterByCategory(ps, "xyz")

		require.Len(t, got, 1)
		assert.Equal(t, int64(6), got[0].ID)
	})

	t.Run("EmptySelectorDisablesFiltering", func(t *testing.T) {
		got := service.FilterByCategory(products, "")

		assert.Equal(t, products, got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := service.FilterByCategory(products, "homme_short")
		twice := service.FilterByCategory(once, "homme_short")

		assert.Equal(t, once, twice)
	})

	t.Run("SourceNotMutated", func(t *testing.T) {
		before := make([]domain.Product, len(products))
		copy(before, products)

		_ = service.FilterByCategory(products, "homme")

		assert.Equal(t, before, products)
	})
}
