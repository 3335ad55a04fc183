// ABOUTME: Catalog autodiscovery from regular website URLs
// ABOUTME: Scans HTML link elements for advertised OPDS catalog documents

package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"opds-client-api/core/catalog"
	coreerrors "opds-client-api/core/errors"
	"opds-client-api/core/interfaces"
)

const opdsProfile = "application/atom+xml;profile=opds-catalog"

// Service discovers catalog URLs from website pages. Sites advertising
// a catalog do so with a <link> element typed with the OPDS profile;
// a plain atom+xml link is accepted as a fallback.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new discovery service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// DiscoverCatalog fetches siteURL and returns the first advertised
// catalog URL, made absolute against the page URL.
func (s *Service) DiscoverCatalog(ctx context.Context, siteURL string) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, siteURL, map[string]string{
		"Accept": "text/html, application/xhtml+xml",
	})
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &coreerrors.UpstreamError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			URL:        siteURL,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", fmt.Errorf("parsing page HTML: %w", err)
	}

	href := findCatalogLink(doc)
	if href == "" {
		return "", errors.New("no catalog link found")
	}

	return catalog.ResolveLink(href, siteURL), nil
}

// findCatalogLink scans link elements, preferring the OPDS profile
// type over plain atom+xml.
func findCatalogLink(doc *goquery.Document) string {
	var profileHref, atomHref string

	doc.Find("link[href]").Each(func(i int, sel *goquery.Selection) {
		linkType := strings.ToLower(strings.ReplaceAll(sel.AttrOr("type", ""), " ", ""))
		href := sel.AttrOr("href", "")
		if href == "" {
			return
		}

		if strings.Contains(linkType, opdsProfile) && profileHref == "" {
			profileHref = href
		} else if strings.Contains(linkType, "application/atom+xml") && atomHref == "" {
			atomHref = href
		}
	})

	if profileHref != "" {
		return profileHref
	}
	return atomHref
}
