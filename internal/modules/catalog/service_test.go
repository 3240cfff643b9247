package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productEntries = `{
  "items": [
    {
      "sys": {"id": "prod-1"},
      "fields": {
        "name": "Carved Dining Chair",
        "slug": "carved-dining-chair",
        "description": {
          "nodeType": "document",
          "content": [
            {"nodeType": "paragraph", "content": [
              {"nodeType": "text", "value": "Hand-carved from "},
              {"nodeType": "text", "value": "local hardwood."}
            ]}
          ]
        },
        "price": 45000,
        "image": {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-1"}},
        "category": {"sys": {"type": "Link", "linkType": "Entry", "id": "cat-1"}}
      }
    },
    {
      "sys": {"id": "prod-2"},
      "fields": {
        "name": "Milking Stool",
        "slug": "milking-stool",
        "description": "A simple three-legged stool.",
        "price": 8000,
        "category": "Stools"
      }
    }
  ],
  "includes": {
    "Asset": [
      {"sys": {"id": "asset-1"}, "fields": {"file": {"url": "//images.ctfassets.net/chair.jpg"}}}
    ],
    "Entry": [
      {"sys": {"id": "cat-1"}, "fields": {"name": "Chairs", "slug": "chairs"}}
    ]
  }
}`

const categoryEntries = `{
  "items": [
    {
      "sys": {"id": "cat-1"},
      "fields": {
        "name": "Chairs",
        "slug": "chairs",
        "description": "Seating of all kinds.",
        "image": {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-2"}}
      }
    },
    {
      "sys": {"id": "cat-2"},
      "fields": {"name": "Tables", "slug": "tables"}
    }
  ],
  "includes": {
    "Asset": [
      {"sys": {"id": "asset-2"}, "fields": {"file": {"url": "//images.ctfassets.net/chairs.jpg"}}}
    ]
  }
}`

const heroEntries = `{
  "items": [
    {
      "sys": {"id": "hero-1"},
      "fields": {
        "title": "Handcrafted in Rwanda",
        "subtitle": "Furniture with a story",
        "description": {"nodeType": "document", "content": [
          {"nodeType": "text", "value": "Every piece is made by hand."}
        ]},
        "images": [
          {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-3"}},
          {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-4"}}
        ]
      }
    }
  ],
  "includes": {
    "Asset": [
      {"sys": {"id": "asset-3"}, "fields": {"file": {"url": "//images.ctfassets.net/hero1.jpg"}}},
      {"sys": {"id": "asset-4"}, "fields": {"file": {"url": "//images.ctfassets.net/hero2.jpg"}}}
    ]
  }
}`

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/test-space/environments/master/entries", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("content_type") {
		case "product":
			fmt.Fprint(w, productEntries)
		case "category":
			fmt.Fprint(w, categoryEntries)
		case "hero":
			fmt.Fprint(w, heroEntries)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fixtureService(t *testing.T) *Service {
	srv := fixtureServer(t)
	return NewService(NewContentfulClient(ContentfulConfig{
		SpaceID:     "test-space",
		AccessToken: "test-token",
		BaseURL:     srv.URL,
	}))
}

func TestService_GetProducts(t *testing.T) {
	service := fixtureService(t)

	products, err := service.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	chair := products[0]
	assert.Equal(t, "prod-1", chair.ID)
	assert.Equal(t, "Carved Dining Chair", chair.Name)
	assert.Equal(t, "Hand-carved from local hardwood.", chair.Description)
	assert.Equal(t, 45000.0, chair.Price)
	assert.Equal(t, "https://images.ctfassets.net/chair.jpg", chair.Image)
	assert.Equal(t, "Chairs", chair.Category)
	assert.Equal(t, "cat-1", chair.CategoryID)

	stool := products[1]
	assert.Equal(t, "A simple three-legged stool.", stool.Description)
	assert.Equal(t, "Stools", stool.Category)
	assert.Empty(t, stool.CategoryID)
	assert.Empty(t, stool.Image)
}

func TestService_GetCategories(t *testing.T) {
	service := fixtureService(t)

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	chairs := categories[0]
	assert.Equal(t, "Chairs", chairs.Name)
	assert.Equal(t, "https://images.ctfassets.net/chairs.jpg", chairs.Image)
	assert.Equal(t, 1, chairs.ProductCount)
	require.Len(t, chairs.Products, 1)
	assert.Equal(t, "prod-1", chairs.Products[0].ID)

	tables := categories[1]
	assert.Equal(t, 0, tables.ProductCount)
	assert.Empty(t, tables.Products)
}

func TestService_GetCategories_CategoryQueryFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("content_type") == "product" {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, productEntries)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	service := NewService(NewContentfulClient(ContentfulConfig{
		SpaceID: "test-space", AccessToken: "test-token", BaseURL: srv.URL,
	}))

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestService_GetHero(t *testing.T) {
	service := fixtureService(t)

	hero := service.GetHero(context.Background())
	require.NotNil(t, hero)
	assert.Equal(t, "Handcrafted in Rwanda", hero.Title)
	assert.Equal(t, "Furniture with a story", hero.Subtitle)
	assert.Equal(t, "Every piece is made by hand.", hero.Description)
	assert.Equal(t, []string{
		"https://images.ctfassets.net/hero1.jpg",
		"https://images.ctfassets.net/hero2.jpg",
	}, hero.Images)
}

func TestService_GetHero_UpstreamFailureReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	service := NewService(NewContentfulClient(ContentfulConfig{
		SpaceID: "test-space", AccessToken: "test-token", BaseURL: srv.URL,
	}))

	assert.Nil(t, service.GetHero(context.Background()))
}

func TestToPlainText(t *testing.T) {
	assert.Equal(t, "", toPlainText(nil))
	assert.Equal(t, "plain", toPlainText("plain"))
	assert.Equal(t, "ab", toPlainText([]any{
		map[string]any{"nodeType": "text", "value": "a"},
		map[string]any{"nodeType": "text", "value": "b"},
	}))
	assert.Equal(t, "", toPlainText(map[string]any{"nodeType": "embedded-asset-block"}))
}
