// ABOUTME: Link classification predicates for catalog feeds
// ABOUTME: Decides acquisition, subsection, navigation and cover roles from rel/type/href signals

package catalog

import (
	"strings"

	"opds-client-api/core/domain"
)

// The wire format has no single authoritative "this is a download"
// field, so classification evaluates independent signals with OR
// semantics. Predicates may overlap; callers decide priority.

var acquisitionTypes = []string{
	"epub",
	"pdf",
	"mobi",
	"x-mobipocket",
	"text/plain",
	"text/html",
	"application/zip",
}

var acquisitionExtensions = []string{
	".epub",
	".pdf",
	".mobi",
	".azw",
	".azw3",
	".txt",
	".html",
	".zip",
}

// IsAcquisitionLink reports whether the link points at downloadable
// content. Any one of rel, type or href extension qualifies it.
func IsAcquisitionLink(link domain.Link) bool {
	rel := strings.ToLower(link.Rel)
	if strings.Contains(rel, "acquisition") || strings.Contains(rel, "enclosure") {
		return true
	}

	mimeType := strings.ToLower(link.Type)
	for _, t := range acquisitionTypes {
		if strings.Contains(mimeType, t) {
			return true
		}
	}

	href := strings.ToLower(link.Href)
	for _, ext := range acquisitionExtensions {
		if strings.HasSuffix(href, ext) {
			return true
		}
	}

	return false
}

// IsSubsectionLink reports whether the link leads to a sub-catalog.
func IsSubsectionLink(link domain.Link) bool {
	if strings.ToLower(link.Rel) == "subsection" {
		return true
	}

	mimeType := strings.ToLower(link.Type)
	return strings.Contains(mimeType, "atom+xml") || strings.Contains(mimeType, "navigation")
}

// IsNavigationEntry reports whether the entry represents a sub-catalog
// to browse further rather than an acquirable item.
func IsNavigationEntry(entry domain.Entry) bool {
	for _, link := range entry.Links {
		if strings.ToLower(link.Rel) == "subsection" {
			return true
		}
		mimeType := strings.ToLower(link.Type)
		if strings.Contains(mimeType, "navigation") {
			return true
		}
		if strings.Contains(mimeType, "atom+xml;profile=opds-catalog") {
			return true
		}
	}
	return false
}

// IsCoverCandidate reports whether the link could be the entry's cover
// image. The parser takes the first matching link in document order.
func IsCoverCandidate(link domain.Link) bool {
	rel := strings.ToLower(link.Rel)
	if strings.Contains(rel, "image") || strings.Contains(rel, "thumbnail") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(link.Type), "image/")
}

// AcquisitionLinks filters the entry's links down to acquisition
// links, preserving document order.
func AcquisitionLinks(entry domain.Entry) []domain.Link {
	links := make([]domain.Link, 0, len(entry.Links))
	for _, link := range entry.Links {
		if IsAcquisitionLink(link) {
			links = append(links, link)
		}
	}
	return links
}

// SubsectionLinks filters the entry's links down to subsection links,
// preserving document order.
func SubsectionLinks(entry domain.Entry) []domain.Link {
	links := make([]domain.Link, 0, len(entry.Links))
	for _, link := range entry.Links {
		if IsSubsectionLink(link) {
			links = append(links, link)
		}
	}
	return links
}

// NavigationLinks looks up the first feed-level link for each of the
// well-known relations. "previous" and "prev" are treated as the same
// relation.
func NavigationLinks(feed *domain.Feed) domain.NavigationLinks {
	nav := domain.NavigationLinks{}
	if feed == nil {
		return nav
	}

	for i := range feed.Links {
		link := &feed.Links[i]
		switch strings.ToLower(link.Rel) {
		case "self":
			if nav.Self == nil {
				nav.Self = link
			}
		case "start":
			if nav.Start == nil {
				nav.Start = link
			}
		case "up":
			if nav.Up == nil {
				nav.Up = link
			}
		case "next":
			if nav.Next == nil {
				nav.Next = link
			}
		case "previous", "prev":
			if nav.Previous == nil {
				nav.Previous = link
			}
		case "search":
			if nav.Search == nil {
				nav.Search = link
			}
		}
	}

	return nav
}
