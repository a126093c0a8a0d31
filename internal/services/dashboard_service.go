// internal/services/dashboard_service.go
package services

import (
	"strings"

	"github.com/javajoker/catalog-admin/internal/models"
)

const (
	DefaultTab         = "products"
	defaultPlaceholder = "Product List will be here."
)

// Sidebar entries in display order, with the label shown for tabs that have
// no content yet. Products carries the catalog overview instead.
var dashboardSections = []struct {
	Title       string
	Placeholder string
}{
	{"Home", "Home"},
	{"Store", "Store Information"},
	{"Products", ""},
	{"Catalogue", "Catalogue Information"},
	{"Promotion", "Promotion Information"},
	{"Reports", "Reports Section"},
	{"Docs", "Docs Section"},
	{"Settings", "Settings Section"},
}

type DashboardService struct {
	store *CatalogStore
}

type SidebarItem struct {
	Title  string `json:"title"`
	Tab    string `json:"tab"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type DashboardView struct {
	ActiveTab   string          `json:"active_tab"`
	Sidebar     []SidebarItem   `json:"sidebar"`
	Placeholder string          `json:"placeholder,omitempty"`
	Catalog     []CategoryGroup `json:"catalog,omitempty"`
}

// CategoryGroup is one category with the products filed under its name.
type CategoryGroup struct {
	Category models.Category  `json:"category"`
	Products []ProductSummary `json:"products"`
}

// ProductSummary is a product as listed on the dashboard, with the price
// after discount.
type ProductSummary struct {
	models.Product
	FinalPriceINR float64 `json:"finalPriceInr"`
}

func NewDashboardService(store *CatalogStore) *DashboardService {
	return &DashboardService{store: store}
}

// View renders the dashboard for tab. An empty tab selects products; an
// unknown tab keeps its name as active and shows the default placeholder.
func (s *DashboardService) View(tab string) DashboardView {
	if tab == "" {
		tab = DefaultTab
	}

	view := DashboardView{ActiveTab: tab, Placeholder: defaultPlaceholder}
	for _, sec := range dashboardSections {
		key := strings.ToLower(sec.Title)
		item := SidebarItem{
			Title:  sec.Title,
			Tab:    key,
			Href:   "/v1/dashboard?tab=" + key,
			Active: key == tab,
		}
		view.Sidebar = append(view.Sidebar, item)

		if !item.Active {
			continue
		}
		view.Placeholder = sec.Placeholder
		if key == DefaultTab {
			view.Catalog = s.Catalog()
			if view.Catalog == nil {
				view.Catalog = []CategoryGroup{}
			}
		}
	}
	return view
}

// Catalog groups products under the category whose name they carry, in
// category order. Products naming no existing category are not listed.
func (s *DashboardService) Catalog() []CategoryGroup {
	state := s.store.GetState()

	groups := make([]CategoryGroup, 0, len(state.Categories))
	for _, c := range state.Categories {
		g := CategoryGroup{Category: c, Products: []ProductSummary{}}
		for _, p := range state.Products {
			if p.Category == c.Name {
				g.Products = append(g.Products, Summarize(p))
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// ListProducts filters products by exact category and by a case-insensitive
// substring of name or brand.
func (s *DashboardService) ListProducts(category, search string) []ProductSummary {
	search = strings.ToLower(strings.TrimSpace(search))

	out := []ProductSummary{}
	for _, p := range s.store.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		out = append(out, Summarize(p))
	}
	return out
}

func Summarize(p models.Product) ProductSummary {
	return ProductSummary{Product: p, FinalPriceINR: FinalPrice(p.PriceINR, p.Discount)}
}
