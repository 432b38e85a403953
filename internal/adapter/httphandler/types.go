package httphandler

import "github.com/niksmo/sportshop/internal/core/domain"

type (
	ProductView struct {
		ID              int64   `json:"id"`
		Name            string  `json:"name"`
		Category        string  `json:"category"`
		CategoryLabel   string  `json:"category_label"`
		Price           float64 `json:"price"`
		EffectivePrice  float64 `json:"effective_price"`
		DiscountPercent int     `json:"discount_percent"`
		IsNew           bool    `json:"is_new"`
		IsPopular       bool    `json:"is_popular"`
		ImageURL        string  `json:"image_url"`
		Description     string  `json:"description,omitempty"`
	}

	SectionResponse struct {
		Status       string        `json:"status"`
		Items        []ProductView `json:"items,omitempty"`
		Category     string        `json:"category,omitempty"`
		CategoryName string        `json:"category_name,omitempty"`
		Title        string        `json:"title,omitempty"`
		Description  string        `json:"description,omitempty"`
	}
)

func toSectionResponse(st domain.SectionState) SectionResponse {
	res := SectionResponse{Status: st.Status.String()}

	switch st.Status {
	case domain.StatusReady:
		res.Items = make([]ProductView, 0, len(st.Items))
		for _, vm := range st.Items {
			res.Items = append(res.Items, toProductView(vm))
		}
	case domain.StatusEmpty:
		res.Category = st.Category
		res.CategoryName = domain.CategoryDisplayName(st.Category)
	}
	return res
}

func toProductView(vm domain.ProductViewModel) ProductView {
	return ProductView{
		ID:              vm.ID,
		Name:            vm.Name,
		Category:        vm.Category,
		CategoryLabel:   vm.CategoryLabel,
		Price:           vm.Price,
		EffectivePrice:  vm.EffectivePrice,
		DiscountPercent: vm.DiscountPercent,
		IsNew:           vm.IsNew,
		IsPopular:       vm.IsPopular,
		ImageURL:        vm.ImageURL,
		Description:     vm.Description,
	}
}
