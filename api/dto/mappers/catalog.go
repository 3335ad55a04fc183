// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Classifies entry links and extracts navigation while mapping

package mappers

import (
	"opds-client-api/api/dto/responses"
	"opds-client-api/core/catalog"
	"opds-client-api/core/domain"
)

// ToLinkResponse converts a domain Link to a LinkResponse DTO
func ToLinkResponse(link domain.Link) responses.LinkResponse {
	return responses.LinkResponse{
		Href:  link.Href,
		Type:  link.Type,
		Rel:   link.Rel,
		Title: link.Title,
	}
}

// ToLinkResponses converts a slice of domain Links
func ToLinkResponses(links []domain.Link) []responses.LinkResponse {
	out := make([]responses.LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, ToLinkResponse(link))
	}
	return out
}

// toOptionalLink converts an optional navigation link
func toOptionalLink(link *domain.Link) *responses.LinkResponse {
	if link == nil {
		return nil
	}
	mapped := ToLinkResponse(*link)
	return &mapped
}

// ToEntryResponse converts a domain Entry to an EntryResponse DTO,
// classifying its links along the way
func ToEntryResponse(entry domain.Entry) responses.EntryResponse {
	return responses.EntryResponse{
		ID:               entry.ID,
		Title:            entry.Title,
		Author:           entry.Author,
		Summary:          entry.Summary,
		Updated:          entry.Updated,
		CoverURL:         entry.CoverURL,
		Categories:       entry.Categories,
		Links:            ToLinkResponses(entry.Links),
		AcquisitionLinks: ToLinkResponses(catalog.AcquisitionLinks(entry)),
		SubsectionLinks:  ToLinkResponses(catalog.SubsectionLinks(entry)),
		IsNavigation:     catalog.IsNavigationEntry(entry),
	}
}

// ToFeedResponse converts a domain Feed to a FeedResponse DTO
func ToFeedResponse(feed *domain.Feed) *responses.FeedResponse {
	if feed == nil {
		return nil
	}

	entries := make([]responses.EntryResponse, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		entries = append(entries, ToEntryResponse(entry))
	}

	nav := catalog.NavigationLinks(feed)

	return &responses.FeedResponse{
		ID:      feed.ID,
		Title:   feed.Title,
		Updated: feed.Updated,
		Entries: entries,
		Links:   ToLinkResponses(feed.Links),
		Navigation: responses.NavigationResponse{
			Self:     toOptionalLink(nav.Self),
			Start:    toOptionalLink(nav.Start),
			Up:       toOptionalLink(nav.Up),
			Next:     toOptionalLink(nav.Next),
			Previous: toOptionalLink(nav.Previous),
			Search:   toOptionalLink(nav.Search),
		},
		TotalResults: feed.TotalResults,
		StartIndex:   feed.StartIndex,
		ItemsPerPage: feed.ItemsPerPage,
	}
}

// ToFetchCatalogResponse converts a tagged fetch result
func ToFetchCatalogResponse(result domain.FetchResult) responses.FetchCatalogResponse {
	return responses.FetchCatalogResponse{
		Success: result.Success,
		Feed:    ToFeedResponse(result.Feed),
		Error:   result.Error,
	}
}

// ToSourceResponse converts a domain Source, omitting the password
func ToSourceResponse(source *domain.Source) *responses.SourceResponse {
	if source == nil {
		return nil
	}

	return &responses.SourceResponse{
		ID:             source.ID,
		BaseURL:        source.BaseURL,
		Username:       source.Username,
		HasCredentials: source.HasCredentials(),
	}
}

// ToSourceListResponse converts a slice of domain Sources
func ToSourceListResponse(sources []domain.Source) responses.SourceListResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for i := range sources {
		out = append(out, *ToSourceResponse(&sources[i]))
	}
	return responses.SourceListResponse{
		Sources: out,
		Total:   len(out),
	}
}

// ToSourceTestResponse converts a tagged source validation result
func ToSourceTestResponse(result domain.SourceTestResult) responses.SourceTestResponse {
	return responses.SourceTestResponse{
		Valid: result.Valid,
		Title: result.Title,
		Error: result.Error,
	}
}
