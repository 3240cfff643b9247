package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	cf *ContentfulClient
}

func NewService(cf *ContentfulClient) *Service {
	return &Service{cf: cf}
}

// GetProducts returns the mapped product list.
func (s *Service) GetProducts(ctx context.Context) ([]Product, error) {
	resp, err := s.cf.getEntries(ctx, "product", 0)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(resp.Items))
	for _, item := range resp.Items {
		products = append(products, mapProduct(resp, item))
	}
	return products, nil
}

// GetCategories returns categories with the products filed under each. A
// failing category query degrades to an empty list so the storefront can
// still render products.
func (s *Service) GetCategories(ctx context.Context) ([]CategoryWithProducts, error) {
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.cf.getEntries(ctx, "category", 0)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch categories from Contentful")
		return []CategoryWithProducts{}, nil
	}

	categories := make([]CategoryWithProducts, 0, len(resp.Items))
	for _, item := range resp.Items {
		c := CategoryWithProducts{
			Category: Category{
				ID:          item.Sys.ID,
				Name:        stringField(item.Fields, "name"),
				Slug:        stringField(item.Fields, "slug"),
				Description: toPlainText(item.Fields["description"]),
				Image:       resp.assetURL(item.Fields["image"]),
			},
			Products: []Product{},
		}
		for _, p := range products {
			if p.CategoryID == c.ID {
				c.Products = append(c.Products, p)
			}
		}
		c.ProductCount = len(c.Products)
		categories = append(categories, c)
	}
	return categories, nil
}

// GetHero returns the single hero entry, or nil when none exists or the
// query fails. The storefront falls back to static content on nil.
func (s *Service) GetHero(ctx context.Context) *Hero {
	resp, err := s.cf.getEntries(ctx, "hero", 1)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch hero from Contentful")
		return nil
	}
	if len(resp.Items) == 0 {
		return nil
	}

	item := resp.Items[0]
	hero := &Hero{
		Title:       stringField(item.Fields, "title"),
		Subtitle:    stringField(item.Fields, "subtitle"),
		Description: toPlainText(item.Fields["description"]),
		Images:      []string{},
	}

	if links, ok := item.Fields["images"].([]any); ok {
		for _, link := range links {
			if url := resp.assetURL(link); url != "" {
				hero.Images = append(hero.Images, url)
			}
		}
	}
	// A single image asset goes first, unless already listed.
	if url := resp.assetURL(item.Fields["image"]); url != "" && !contains(hero.Images, url) {
		hero.Images = append([]string{url}, hero.Images...)
	}
	return hero
}

func mapProduct(resp *entriesResponse, item cdaEntry) Product {
	p := Product{
		ID:          item.Sys.ID,
		Name:        stringField(item.Fields, "name"),
		Slug:        stringField(item.Fields, "slug"),
		Description: toPlainText(item.Fields["description"]),
		Price:       floatField(item.Fields, "price"),
		Image:       resp.assetURL(item.Fields["image"]),
	}

	// The category field is either a plain string or an entry link.
	switch cat := item.Fields["category"].(type) {
	case string:
		p.Category = cat
	case map[string]any:
		p.CategoryID = linkID(cat)
		if entry := resp.entryByLink(cat); entry != nil {
			p.Category = stringField(entry.Fields, "name")
		}
	}
	return p
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
