package service

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/niksmo/sportshop/internal/core/domain"
)

const maxSectionItems = 8

const (
	newArrivalsTag = "nouveaute"

	newDiscountPercent = 20
	newDiscountProb    = 0.3

	popularDiscountPercent = 15
	popularDiscountProb    = 0.4
	popularInclusionProb   = 0.5
)

// A Sampler is the random source for merchandising draws.
// [*rand.Rand] satisfies it; tests inject a deterministic one.
type Sampler interface {
	Float64() float64
}

type randSampler struct{}

func (randSampler) Float64() float64 { return rand.Float64() }

// An Enricher derives transient merchandising attributes. It never
// mutates the source products.
type Enricher struct {
	sampler Sampler
}

func NewEnricher(sampler Sampler) Enricher {
	if sampler == nil {
		sampler = randSampler{}
	}
	return Enricher{sampler}
}

// EnrichNew builds the "new arrivals" view-models: featured products
// and everything tagged nouveaute, first 8 in source order, each with
// a 20% discount at probability 0.3.
func (e Enricher) EnrichNew(ps []domain.Product) []domain.ProductViewModel {
	var vms []domain.ProductViewModel
	for _, p := range ps {
		if !p.Featured && !strings.Contains(p.Category, newArrivalsTag) {
			continue
		}

		vm := e.view(p)
		vm.IsNew = true
		if e.sampler.Float64() < newDiscountProb {
			vm.DiscountPercent = newDiscountPercent
		}
		vm.EffectivePrice = effectivePrice(p.Price, vm.DiscountPercent)

		vms = append(vms, vm)
		if len(vms) == maxSectionItems {
			break
		}
	}
	return vms
}

// EnrichPopular builds the "popular" view-models: flagged products plus
// an independent coin flip per product, first 8 in source order, each
// with a 15% discount at probability 0.4. The rotation is a
// merchandising simulation and resamples every render pass.
func (e Enricher) EnrichPopular(ps []domain.Product) []domain.ProductViewModel {
	var vms []domain.ProductViewModel
	for _, p := range ps {
		if !p.Popular && e.sampler.Float64() >= popularInclusionProb {
			continue
		}

		vm := e.view(p)
		vm.IsPopular = true
		if e.sampler.Float64() < popularDiscountProb {
			vm.DiscountPercent = popularDiscountPercent
		}
		vm.EffectivePrice = effectivePrice(p.Price, vm.DiscountPercent)

		vms = append(vms, vm)
		if len(vms) == maxSectionItems {
			break
		}
	}
	return vms
}

// PlainViews projects an already filtered subset without merchandising
// attributes. Category pages use it: the subset is never re-filtered
// and never enriched.
func (e Enricher) PlainViews(ps []domain.Product) []domain.ProductViewModel {
	vms := make([]domain.ProductViewModel, 0, len(ps))
	for _, p := range ps {
		vm := e.view(p)
		vm.EffectivePrice = p.Price
		vms = append(vms, vm)
	}
	return vms
}

func (Enricher) view(p domain.Product) domain.ProductViewModel {
	vm := domain.ProductViewModel{Product: p}
	vm.CategoryLabel = domain.CategoryLabel(p.Category)
	if vm.ImageURL == "" {
		vm.ImageURL = domain.FallbackImageURL
	}
	return vm
}

func effectivePrice(price float64, discountPercent int) float64 {
	if discountPercent == 0 {
		return price
	}
	discounted := price * (1 - float64(discountPercent)/100)
	return math.Round(discounted*100) / 100
}
