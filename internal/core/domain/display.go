package domain

import "strings"

// FallbackImageURL is shown for products without a picture.
const FallbackImageURL = "https://images.unsplash.com/photo-1556821840-3a63f95609a7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"

// Display lookup tables. New categories are additive: extend the maps,
// no code change required.
var categoryTitles = map[string]string{
	"homme":             "Collection Homme",
	"femme":             "Collection Femme",
	"homme_tshirt":      "T-Shirts Homme",
	"homme_short":       "Shorts Homme",
	"homme_survetement": "Survêtements Homme",
	"homme_veste":       "Vestes Homme",
	"femme_tshirt":      "T-Shirts Femme",
	"femme_legging":     "Leggings Femme",
	"femme_short":       "Shorts Femme",
	"femme_ensemble":    "Ensembles Femme",
	"nouveaute":         "Nouveautés",
	"promo":             "Promotions",
}

var categoryNames = map[string]string{
	"homme":             "hommes",
	"femme":             "femmes",
	"homme_tshirt":      "t-shirts homme",
	"homme_short":       "shorts homme",
	"homme_survetement": "survêtements homme",
	"homme_veste":       "vestes homme",
	"femme_tshirt":      "t-shirts femme",
	"femme_legging":     "leggings femme",
	"femme_short":       "shorts femme",
	"femme_ensemble":    "ensembles femme",
	"nouveaute":         "nouveautés",
	"promo":             "promotions",
}

var categoryLabels = map[string]string{
	"homme_tshirt":      "T-SHIRT HOMME",
	"femme_tshirt":      "T-SHIRT FEMME",
	"homme_short":       "SHORT HOMME",
	"femme_legging":     "LEGGING FEMME",
	"homme_survetement": "SURVÊTEMENT HOMME",
	"femme_ensemble":    "ENSEMBLE FEMME",
	"homme_veste":       "VESTE HOMME",
	"nouveaute":         "NOUVEAUTÉ",
	"promo":             "PROMOTION",
}

// SectionHeaderFor resolves the page header for a category selector.
// Selectors outside the table report ok=false and the caller keeps the
// previous header.
func SectionHeaderFor(selector string) (h SectionHeader, ok bool) {
	title, ok := categoryTitles[selector]
	if !ok {
		return SectionHeader{}, false
	}
	h.Title = strings.ToUpper(title)
	h.Description = "Découvrez notre " + strings.ToLower(title)
	return h, true
}

// CategoryDisplayName returns the plural human-readable name used in
// empty-state messages, falling back to the raw selector.
func CategoryDisplayName(selector string) string {
	if name, ok := categoryNames[selector]; ok {
		return name
	}
	return selector
}

// CategoryLabel returns the card label for a category tag.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return strings.ToUpper(category)
}
