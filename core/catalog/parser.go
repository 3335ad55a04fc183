// ABOUTME: OPDS/Atom feed parser producing typed Feed values from raw XML
// ABOUTME: Tolerates missing elements with documented defaults, errors only on unparseable XML

package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"opds-client-api/core/domain"
)

// DefaultFeedTitle is used when the document carries no feed title.
const DefaultFeedTitle = "Untitled catalog"

// ParseFeed parses a raw catalog document into a Feed. All hrefs are
// resolved against sourceURL before they leave this function. Element
// lookups ignore namespace prefixes, so both "atom:entry" and "entry"
// match; OpenSearch pagination elements are read namespaced or not.
//
// Missing elements fall back to defaults (id -> sourceURL, title ->
// DefaultFeedTitle, pagination omitted); only input that cannot be
// parsed as XML at all is an error.
func ParseFeed(data []byte, sourceURL string) (*domain.Feed, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing feed XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("feed document has no root element")
	}

	feed := &domain.Feed{
		ID:    sourceURL,
		Title: DefaultFeedTitle,
	}

	if id := elementText(root, "id"); id != "" {
		feed.ID = id
	}
	if title := elementText(root, "title"); title != "" {
		feed.Title = title
	}
	feed.Updated = elementText(root, "updated")

	feed.TotalResults = elementInt(root, "totalResults")
	feed.StartIndex = elementInt(root, "startIndex")
	feed.ItemsPerPage = elementInt(root, "itemsPerPage")

	for _, el := range root.SelectElements("link") {
		if link, ok := parseLink(el, sourceURL); ok {
			feed.Links = append(feed.Links, link)
		}
	}

	for _, el := range root.SelectElements("entry") {
		feed.Entries = append(feed.Entries, parseEntry(el, sourceURL))
	}

	return feed, nil
}

// parseEntry converts one <entry> element into a domain Entry.
func parseEntry(el *etree.Element, sourceURL string) domain.Entry {
	entry := domain.Entry{
		ID:      elementText(el, "id"),
		Title:   elementText(el, "title"),
		Updated: elementText(el, "updated"),
	}

	entry.Summary = elementText(el, "summary")
	if entry.Summary == "" {
		entry.Summary = elementText(el, "content")
	}

	if author := el.SelectElement("author"); author != nil {
		entry.Author = elementText(author, "name")
	}

	for _, cat := range el.SelectElements("category") {
		label := strings.TrimSpace(cat.SelectAttrValue("label", ""))
		if label == "" {
			label = strings.TrimSpace(cat.SelectAttrValue("term", ""))
		}
		if label != "" {
			entry.Categories = append(entry.Categories, label)
		}
	}

	for _, linkEl := range el.SelectElements("link") {
		link, ok := parseLink(linkEl, sourceURL)
		if !ok {
			continue
		}
		entry.Links = append(entry.Links, link)
		// First cover candidate in document order wins.
		if entry.CoverURL == "" && IsCoverCandidate(link) {
			entry.CoverURL = link.Href
		}
	}

	return entry
}

// parseLink converts a <link> element, resolving its href. Links
// without an href are dropped.
func parseLink(el *etree.Element, sourceURL string) (domain.Link, bool) {
	href := ResolveLink(strings.TrimSpace(el.SelectAttrValue("href", "")), sourceURL)
	if href == "" {
		return domain.Link{}, false
	}

	return domain.Link{
		Href:  href,
		Type:  strings.TrimSpace(el.SelectAttrValue("type", "")),
		Rel:   strings.TrimSpace(el.SelectAttrValue("rel", "")),
		Title: strings.TrimSpace(el.SelectAttrValue("title", "")),
	}, true
}

// elementText returns the trimmed text of the first matching child
// element, regardless of namespace prefix.
func elementText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// elementInt reads an integer-valued child element. The pointer is nil
// when the element is absent or its text is not an integer, so callers
// can distinguish "unknown" from zero.
func elementInt(parent *etree.Element, tag string) *int {
	text := elementText(parent, tag)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}
