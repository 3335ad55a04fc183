// ABOUTME: Relative link resolution against a catalog document URL
// ABOUTME: Implements the three-rule resolver used for every href in a feed

package catalog

import "strings"

// ResolveLink turns a possibly-relative href into an absolute URL given
// the URL of the document it appeared in. Three rules apply:
//
//   - an empty href stays empty (callers treat it as "no link")
//   - an absolute http/https href is returned unchanged
//   - an href starting with "/" is resolved against the origin of the
//     base URL, discarding the base URL's path
//   - anything else is appended to the directory of the base URL (the
//     base with everything after its last path slash removed)
//
// This is a deliberately simplified resolver: it does not normalize
// ".." segments and does not handle query-relative references. Remote
// catalogs in practice emit plain child or root-relative hrefs, which
// these rules cover.
func ResolveLink(href, baseDocumentURL string) string {
	if href == "" {
		return ""
	}

	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return href
	}

	if strings.HasPrefix(href, "/") {
		return origin(baseDocumentURL) + href
	}

	return directory(baseDocumentURL) + href
}

// pathStart returns the index where the path portion of the URL begins,
// i.e. just past "scheme://".
func pathStart(rawURL string) int {
	i := strings.Index(rawURL, "://")
	if i < 0 {
		return 0
	}
	return i + len("://")
}

// origin returns scheme, host and port of the URL without any path.
func origin(rawURL string) string {
	start := pathStart(rawURL)
	if j := strings.Index(rawURL[start:], "/"); j >= 0 {
		return rawURL[:start+j]
	}
	return rawURL
}

// directory returns the URL up to and including its last path slash.
func directory(rawURL string) string {
	start := pathStart(rawURL)
	if j := strings.LastIndex(rawURL[start:], "/"); j >= 0 {
		return rawURL[:start+j+1]
	}
	return rawURL + "/"
}
