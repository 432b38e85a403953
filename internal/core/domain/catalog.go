package domain

import "errors"

var (
	// ErrLoad reports that the product source is unreachable or the
	// payload is unparsable. No section reaches Ready after it.
	ErrLoad = errors.New("failed to load catalog")

	ErrNotFound = errors.New("not found")
)

type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	ImageURL    string
	Description string
	Featured    bool
	Popular     bool
}

// A ProductViewModel is the display-ready projection of a [Product].
// It is derived per render pass and never persisted.
type ProductViewModel struct {
	Product
	CategoryLabel   string
	IsNew           bool
	IsPopular       bool
	DiscountPercent int
	EffectivePrice  float64
}

type Section string

const (
	SectionNewArrivals  Section = "new-arrivals"
	SectionPopular      Section = "popular"
	SectionCategoryPage Section = "category"
)

type SectionStatus int

const (
	StatusIdle SectionStatus = iota
	StatusLoading
	StatusReady
	StatusEmpty
)

func (s SectionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusEmpty:
		return "empty"
	}
	return "idle"
}

// A SectionState is the value a rendering collaborator consumes.
// Items is set for StatusReady, Category for StatusEmpty.
type SectionState struct {
	Status   SectionStatus
	Items    []ProductViewModel
	Category string
}

type SectionHeader struct {
	Title       string
	Description string
}

// A PageView is the analytics event emitted on every Ready or Empty
// section publication.
type PageView struct {
	Section  string
	Category string
	Items    int
	ViewedAt int64
}
