package handlers

import "testing"

func TestDemoCategories(t *testing.T) {
	cats := demoCategories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 demo categories, got %d", len(cats))
	}

	wantSlugs := []string{"mobiles", "electronics", "fashion", "home"}
	for i, want := range wantSlugs {
		if cats[i].Slug != want {
			t.Fatalf("expected slug %q at position %d, got %q", want, i, cats[i].Slug)
		}
	}
}

func TestDemoProductsReferenceDemoCategorySlugs(t *testing.T) {
	slugs := map[string]bool{}
	for _, cat := range demoCategories() {
		slugs[cat.Slug] = true
	}

	products := demoProducts()
	if len(products) != 2 {
		t.Fatalf("expected 2 demo products, got %d", len(products))
	}
	for _, p := range products {
		if !slugs[p.Category] {
			t.Fatalf("product %q references unknown category %q", p.Title, p.Category)
		}
	}
}

func TestDemoBanners(t *testing.T) {
	banners := demoBanners()
	if len(banners) != 2 {
		t.Fatalf("expected 2 demo banners, got %d", len(banners))
	}
	for _, b := range banners {
		if b.Title == "" || b.Image == "" {
			t.Fatalf("banner missing required fields: %+v", b)
		}
	}
}
