// ABOUTME: Mappers for converting discussion outcomes to API DTOs
// ABOUTME: Attaches the rendered HTML element to every result

package mappers

import (
	"discussions-app-api/api/dto/responses"
	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/core/render"
	"discussions-app-api/pkg/utils/format"
	"github.com/jinzhu/copier"
)

// ToDiscussionResponse converts a domain result, rendering its HTML element
func ToDiscussionResponse(result domain.DiscussionResult) (responses.DiscussionResponse, error) {
	var response responses.DiscussionResponse
	if err := copier.Copy(&response, &result); err != nil {
		return responses.DiscussionResponse{}, err
	}

	if result.CreatedAt != nil && *result.CreatedAt != 0 {
		response.Date = format.FormatDate(*result.CreatedAt)
	}

	markup, err := render.RenderHTML(render.BuildResultNodeFor(result))
	if err != nil {
		return responses.DiscussionResponse{}, err
	}
	response.HTML = markup

	return response, nil
}

// ToOutcomeResponse converts a pipeline outcome
func ToOutcomeResponse(outcome discussions.Outcome) (responses.OutcomeResponse, error) {
	response := responses.OutcomeResponse{
		Status:  outcome.Kind.String(),
		Message: outcome.Message(),
		Results: make([]responses.DiscussionResponse, 0, len(outcome.Items)),
	}

	for _, item := range outcome.Items {
		result, err := ToDiscussionResponse(item)
		if err != nil {
			return responses.OutcomeResponse{}, err
		}
		response.Results = append(response.Results, result)
	}

	return response, nil
}

// ToPageResponse converts a page snapshot
func ToPageResponse(page domain.PageContext) responses.PageResponse {
	var response responses.PageResponse
	_ = copier.Copy(&response, &page)
	return response
}

// ToLookupResponse converts a combined lookup
func ToLookupResponse(result discussions.LookupResult) (*responses.LookupResponse, error) {
	hackerNews, err := ToOutcomeResponse(result.HackerNews)
	if err != nil {
		return nil, err
	}
	reddit, err := ToOutcomeResponse(result.Reddit)
	if err != nil {
		return nil, err
	}

	return &responses.LookupResponse{
		Page:       ToPageResponse(result.Page),
		Modes:      result.Modes.String(),
		HackerNews: hackerNews,
		Reddit:     reddit,
	}, nil
}

// ToSourceResponse converts a single pipeline lookup
func ToSourceResponse(page domain.PageContext, outcome discussions.Outcome) (*responses.SourceResponse, error) {
	converted, err := ToOutcomeResponse(outcome)
	if err != nil {
		return nil, err
	}
	return &responses.SourceResponse{
		Page:    ToPageResponse(page),
		Outcome: converted,
	}, nil
}
