// Package catalog proxies the product catalog out of Contentful. The shop
// content lives entirely in Contentful; this service only reads it.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultCDABaseURL = "https://cdn.contentful.com"

type ContentfulConfig struct {
	SpaceID     string
	AccessToken string
	// BaseURL overrides the CDA endpoint, used by tests.
	BaseURL string
}

// ContentfulClient speaks the Content Delivery API directly. Links to assets
// and entries are resolved from the includes section of each response.
type ContentfulClient struct {
	http    *resty.Client
	spaceID string
}

func NewContentfulClient(cfg ContentfulConfig) *ContentfulClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultCDABaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.AccessToken).
		SetTimeout(10 * time.Second)

	return &ContentfulClient{http: client, spaceID: cfg.SpaceID}
}

type sysInfo struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
}

type cdaEntry struct {
	Sys    sysInfo        `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type cdaIncludes struct {
	Asset []cdaEntry `json:"Asset"`
	Entry []cdaEntry `json:"Entry"`
}

type entriesResponse struct {
	Items    []cdaEntry  `json:"items"`
	Includes cdaIncludes `json:"includes"`
}

func (c *ContentfulClient) getEntries(ctx context.Context, contentType string, limit int) (*entriesResponse, error) {
	params := map[string]string{"content_type": contentType}
	if limit > 0 {
		params["limit"] = fmt.Sprintf("%d", limit)
	}

	var out entriesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(fmt.Sprintf("/spaces/%s/environments/master/entries", c.spaceID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("contentful: status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}

// assetURL resolves an asset link field to an absolute file URL. Contentful
// serves protocol-relative URLs; those get an https prefix.
func (r *entriesResponse) assetURL(field any) string {
	id := linkID(field)
	if id == "" {
		return ""
	}
	for _, a := range r.Includes.Asset {
		if a.Sys.ID != id {
			continue
		}
		file, _ := a.Fields["file"].(map[string]any)
		url, _ := file["url"].(string)
		return absoluteURL(url)
	}
	return ""
}

// entryByLink resolves an entry link field from the includes section.
func (r *entriesResponse) entryByLink(field any) *cdaEntry {
	id := linkID(field)
	if id == "" {
		return nil
	}
	for i := range r.Includes.Entry {
		if r.Includes.Entry[i].Sys.ID == id {
			return &r.Includes.Entry[i]
		}
	}
	return nil
}

func linkID(field any) string {
	m, ok := field.(map[string]any)
	if !ok {
		return ""
	}
	sys, _ := m["sys"].(map[string]any)
	id, _ := sys["id"].(string)
	return id
}

func absoluteURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func floatField(fields map[string]any, key string) float64 {
	f, _ := fields[key].(float64)
	return f
}

// toPlainText flattens a Contentful rich-text document to its text content.
// Plain string fields pass through unchanged.
func toPlainText(node any) string {
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return n
	case []any:
		var sb strings.Builder
		for _, child := range n {
			sb.WriteString(toPlainText(child))
		}
		return sb.String()
	case map[string]any:
		if n["nodeType"] == "text" {
			s, _ := n["value"].(string)
			return s
		}
		if content, ok := n["content"].([]any); ok {
			return toPlainText(content)
		}
		return ""
	}
	return ""
}
