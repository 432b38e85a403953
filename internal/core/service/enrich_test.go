package service_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/niksmo/sportshop/internal/core/domain"
	"github.com/niksmo/sportshop/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSampler replays a fixed sequence of draws, cycling at the end.
// Safe for concurrent pipelines.
type seqSampler struct {
	mu   sync.Mutex
	vals []float64
	i    int
}

func (s *seqSampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func constSampler(v float64) *seqSampler {
	return &seqSampler{vals: []float64{v}}
}

func TestEnrichNew(t *testing.T) {
	t.Run("SelectsFeaturedAndNouveaute", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_tshirt", Price: 50, Featured: true},
			{ID: 2, Name: "B", Category: "femme_legging", Price: 40},
			{ID: 3, Name: "C", Category: "nouveaute", Price: 60},
		}
		e := service.NewEnricher(constSampler(0.9))

		got := e.EnrichNew(ps)

		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		for _, vm := range got {
			assert.True(t, vm.IsNew)
			assert.False(t, vm.IsPopular)
			assert.Zero(t, vm.DiscountPercent)
			assert.Equal(t, vm.Price, vm.EffectivePrice)
		}
	})

	t.Run("TruncatesToEight", func(t *testing.T) {
		var ps []domain.Product
		for i := range 12 {
			ps = append(ps, domain.Product{
				ID:       int64(i + 1),
				Name:     fmt.Sprintf("P%d", i+1),
				Category: "nouveaute",
				Price:    10,
				Featured: true,
			})
		}
		e := service.NewEnricher(constSampler(0.9))

		got := e.EnrichNew(ps)

		require.Len(t, got, 8)
		for i, vm := range got {
			assert.Equal(t, int64(i+1), vm.ID, "source order preserved")
		}
	})

	t.Run("DiscountDraw", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "nouveaute", Price: 100},
			{ID: 2, Name: "B", Category: "nouveaute", Price: 100},
		}
		// below the 0.3 threshold the item is discounted
		e := service.NewEnricher(&seqSampler{vals: []float64{0.1, 0.3}})

		got := e.EnrichNew(ps)

		require.Len(t, got, 2)
		assert.Equal(t, 20, got[0].DiscountPercent)
		assert.InDelta(t, 80.0, got[0].EffectivePrice, 1e-9)
		assert.Zero(t, got[1].DiscountPercent)
		assert.InDelta(t, 100.0, got[1].EffectivePrice, 1e-9)
	})

	t.Run("SingleFeaturedNouveaute", func(t *testing.T) {
		ps := []domain.Product{{
			ID: 1, Name: "A", Category: "nouveaute", Price: 100, Featured: true,
		}}
		e := service.NewEnricher(nil)

		got := e.EnrichNew(ps)

		require.Len(t, got, 1)
		assert.True(t, got[0].IsNew)
		assert.Contains(t, []int{0, 20}, got[0].DiscountPercent)
		assert.Contains(t, []float64{100, 80}, got[0].EffectivePrice)
	})
}

func TestEnrichPopular(t *testing.T) {
	t.Run("FlaggedAlwaysIncluded", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_short", Price: 30, Popular: true},
			{ID: 2, Name: "B", Category: "femme_short", Price: 25},
		}
		// inclusion draws fail, discount draws fail
		e := service.NewEnricher(constSampler(0.9))

		got := e.EnrichPopular(ps)

		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
		assert.True(t, got[0].IsPopular)
		assert.False(t, got[0].IsNew)
	})

	t.Run("CoinFlipInclusion", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_short", Price: 30},
			{ID: 2, Name: "B", Category: "femme_short", Price: 25},
		}
		// first product: included (0.1 < 0.5), no discount (0.9);
		// second product: excluded (0.7)
		e := service.NewEnricher(&seqSampler{vals: []float64{0.1, 0.9, 0.7}})

		got := e.EnrichPopular(ps)

		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("DiscountDraw", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_short", Price: 50, Popular: true},
		}
		e := service.NewEnricher(constSampler(0.2))

		got := e.EnrichPopular(ps)

		require.Len(t, got, 1)
		assert.Equal(t, 15, got[0].DiscountPercent)
		assert.InDelta(t, 42.5, got[0].EffectivePrice, 1e-9)
		assert.Less(t, got[0].EffectivePrice, got[0].Price)
	})

	t.Run("TruncatesToEight", func(t *testing.T) {
		var ps []domain.Product
		for i := range 20 {
			ps = append(ps, domain.Product{
				ID:      int64(i + 1),
				Name:    fmt.Sprintf("P%d", i+1),
				Price:   10,
				Popular: true,
			})
		}
		e := service.NewEnricher(constSampler(0.9))

		got := e.EnrichPopular(ps)

		assert.Len(t, got, 8)
	})

	t.Run("DiscountDomain", func(t *testing.T) {
		var ps []domain.Product
		for i := range 8 {
			ps = append(ps, domain.Product{
				ID: int64(i + 1), Name: "P", Price: 99.99, Popular: true,
			})
		}
		e := service.NewEnricher(nil)

		for _, vm := range e.EnrichPopular(ps) {
			assert.Contains(t, []int{0, 15}, vm.DiscountPercent)
			assert.LessOrEqual(t, vm.EffectivePrice, vm.Price)
			if vm.DiscountPercent == 0 {
				assert.Equal(t, vm.Price, vm.EffectivePrice)
			} else {
				assert.Less(t, vm.EffectivePrice, vm.Price)
			}
		}
	})
}

func TestPlainViews(t *testing.T) {
	t.Run("NoMerchandising", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_tshirt", Price: 50, Featured: true},
			{ID: 2, Name: "B", Category: "femme_legging", Price: 40, Popular: true},
		}
		e := service.NewEnricher(nil)

		got := e.PlainViews(ps)

		require.Len(t, got, 2)
		for _, vm := range got {
			assert.False(t, vm.IsNew)
			assert.False(t, vm.IsPopular)
			assert.Zero(t, vm.DiscountPercent)
			assert.Equal(t, vm.Price, vm.EffectivePrice)
		}
	})

	t.Run("FallbackImageAndLabel", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "A", Category: "homme_tshirt", Price: 50},
			{ID: 2, Name: "B", Category: "custom_tag", Price: 40,
				ImageURL: "https://cdn.example/b.jpg"},
		}
		e := service.NewEnricher(nil)

		got := e.PlainViews(ps)

		require.Len(t, got, 2)
		assert.Equal(t, domain.FallbackImageURL, got[0].ImageURL)
		assert.Equal(t, "T-SHIRT HOMME", got[0].CategoryLabel)
		assert.Equal(t, "https://cdn.example/b.jpg", got[1].ImageURL)
		assert.Equal(t, "CUSTOM_TAG", got[1].CategoryLabel)
	})
}

func TestEffectivePriceRounding(t *testing.T) {
	ps := []domain.Product{
		{ID: 1, Name: "A", Category: "nouveaute", Price: 33.33},
	}
	e := service.NewEnricher(constSampler(0.0))

	got := e.EnrichNew(ps)

	require.Len(t, got, 1)
	require.Equal(t, 20, got[0].DiscountPercent)
	assert.InDelta(t, 26.66, got[0].EffectivePrice, 1e-9)
}
