package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/catalog-admin/internal/config"
	"github.com/javajoker/catalog-admin/internal/models"
)

func seededStore(t *testing.T) *CatalogStore {
	t.Helper()
	store := NewCatalogStore("")
	store.Seed(models.CatalogState{
		Categories: []models.Category{{ID: "1", Name: "Shoes"}, {ID: "2", Name: "Bags"}},
	})

	for _, p := range []struct{ name, category, brand string }{
		{"Runner", "Shoes", "Acme"},
		{"Tote", "Bags", "Carry"},
		{"Trail", "Shoes", "Peak"},
		{"Orphan", "Hats", "Acme"},
	} {
		d := validDraft()
		d.Name, d.Category, d.Brand = p.name, p.category, p.brand
		_, err := store.AddProduct(d)
		require.NoError(t, err)
	}
	return store
}

func TestDashboardViewDefaultsToProducts(t *testing.T) {
	view := NewDashboardService(seededStore(t)).View("")

	assert.Equal(t, "products", view.ActiveTab)
	require.Len(t, view.Sidebar, 8)
	assert.Equal(t, "Home", view.Sidebar[0].Title)
	assert.True(t, view.Sidebar[2].Active)
	assert.Equal(t, "/v1/dashboard?tab=products", view.Sidebar[2].Href)
	assert.Empty(t, view.Placeholder)
	assert.Len(t, view.Catalog, 2)
}

func TestDashboardViewPlaceholders(t *testing.T) {
	svc := NewDashboardService(NewCatalogStore(""))

	tests := map[string]string{
		"home":      "Home",
		"store":     "Store Information",
		"catalogue": "Catalogue Information",
		"promotion": "Promotion Information",
		"reports":   "Reports Section",
		"docs":      "Docs Section",
		"settings":  "Settings Section",
		"unknown":   "Product List will be here.",
	}
	for tab, want := range tests {
		t.Run(tab, func(t *testing.T) {
			view := svc.View(tab)
			assert.Equal(t, tab, view.ActiveTab)
			assert.Equal(t, want, view.Placeholder)
			assert.Nil(t, view.Catalog)
		})
	}
}

func TestDashboardCatalogGroupsByCategoryName(t *testing.T) {
	groups := NewDashboardService(seededStore(t)).Catalog()

	require.Len(t, groups, 2)
	assert.Equal(t, "Shoes", groups[0].Category.Name)
	require.Len(t, groups[0].Products, 2)
	assert.Equal(t, "Runner", groups[0].Products[0].Name)
	assert.Equal(t, "Trail", groups[0].Products[1].Name)
	assert.Equal(t, 1999.0, groups[0].Products[0].FinalPriceINR)

	assert.Equal(t, "Bags", groups[1].Category.Name)
	require.Len(t, groups[1].Products, 1)
}

func TestDashboardListProducts(t *testing.T) {
	svc := NewDashboardService(seededStore(t))

	assert.Len(t, svc.ListProducts("", ""), 4)
	assert.Len(t, svc.ListProducts("Shoes", ""), 2)
	assert.Len(t, svc.ListProducts("", "acme"), 2)
	assert.Len(t, svc.ListProducts("Shoes", "TRAIL"), 1)
	assert.Empty(t, svc.ListProducts("Toys", ""))
}

func TestAuthLogin(t *testing.T) {
	cfg := &config.Config{Demo: config.DemoConfig{Username: "admin", Password: "admin"}}
	svc := NewAuthService(cfg)

	res, err := svc.Login(&LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, DashboardLandingPath, res.Redirect)

	_, err = svc.Login(&LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(&LoginRequest{Username: "Admin", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
