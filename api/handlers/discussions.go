// ABOUTME: Discussion handlers for the Huma API
// ABOUTME: Looks up related Hacker News and Reddit discussions for a page URL

package handlers

import (
	"context"
	"net/http"

	"discussions-app-api/api/dto/mappers"
	"discussions-app-api/api/dto/requests"
	"discussions-app-api/api/dto/responses"
	"discussions-app-api/core/discussions"
	"discussions-app-api/core/domain"
	"discussions-app-api/infrastructure/page"
	"discussions-app-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// Messages for sources switched off by feature flag
const (
	MsgHackerNewsDisabled = "Hacker News search is disabled"
	MsgRedditDisabled     = "Reddit search is disabled"
)

// DiscussionService defines the methods needed from the discussion service
type DiscussionService interface {
	Lookup(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) discussions.LookupResult
	SearchHackerNews(ctx context.Context, pageURL string) discussions.Outcome
	SearchReddit(ctx context.Context, page domain.PageContext, modes domain.SearchModeSet) discussions.Outcome
}

// DiscussionsHandler handles discussion lookup requests
type DiscussionsHandler struct {
	service DiscussionService
	flags   featureflags.Manager
}

// NewDiscussionsHandler creates a new discussions handler.
// A nil flag manager enables every source.
func NewDiscussionsHandler(service DiscussionService, flags featureflags.Manager) *DiscussionsHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	return &DiscussionsHandler{
		service: service,
		flags:   flags,
	}
}

// RegisterRoutes registers all discussion routes
func (h *DiscussionsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "lookupDiscussions",
		Method:      http.MethodGet,
		Path:        "/discussions",
		Summary:     "Find related discussions",
		Description: "Searches Hacker News and Reddit concurrently for discussions about the page",
		Tags:        []string{"Discussions"},
	}, h.Lookup)

	huma.Register(api, huma.Operation{
		OperationID: "searchHackerNews",
		Method:      http.MethodGet,
		Path:        "/discussions/hackernews",
		Summary:     "Find Hacker News discussions",
		Description: "Searches Hacker News stories linking to the page's host and path",
		Tags:        []string{"Discussions"},
	}, h.SearchHackerNews)

	huma.Register(api, huma.Operation{
		OperationID: "searchReddit",
		Method:      http.MethodGet,
		Path:        "/discussions/reddit",
		Summary:     "Find Reddit discussions",
		Description: "Searches Reddit by URL, title and domain in that order, stopping at the first hit",
		Tags:        []string{"Discussions"},
	}, h.SearchReddit)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Health)
}

// LookupInput defines the input for the Lookup operation
type LookupInput struct {
	requests.DiscussionsRequest
}

// LookupOutput defines the output for the Lookup operation
type LookupOutput struct {
	Body responses.LookupResponse
}

// Lookup handles GET /discussions
func (h *DiscussionsHandler) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	pageCtx, err := input.Page()
	if err != nil {
		return nil, toHumaError(err)
	}
	modes, err := input.SearchModes()
	if err != nil {
		return nil, toHumaError(err)
	}

	ctx = page.WithRequestTitle(ctx, pageCtx.URL, pageCtx.Title)

	hackerNewsOn := h.flags.IsEnabled(ctx, featureflags.HackerNewsEnabled)
	redditOn := h.flags.IsEnabled(ctx, featureflags.RedditEnabled)

	var result discussions.LookupResult
	if hackerNewsOn && redditOn {
		result = h.service.Lookup(ctx, pageCtx, modes)
	} else {
		result = discussions.LookupResult{
			Page:       pageCtx,
			Modes:      modes,
			HackerNews: discussions.Skipped(MsgHackerNewsDisabled),
			Reddit:     discussions.Skipped(MsgRedditDisabled),
		}
		if hackerNewsOn {
			result.HackerNews = h.service.SearchHackerNews(ctx, pageCtx.URL)
		}
		if redditOn {
			result.Reddit = h.service.SearchReddit(ctx, pageCtx, modes)
		}
	}

	response, err := mappers.ToLookupResponse(result)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LookupOutput{Body: *response}, nil
}

// HackerNewsInput defines the input for the SearchHackerNews operation
type HackerNewsInput struct {
	requests.HackerNewsRequest
}

// SourceOutput defines the output for single source operations
type SourceOutput struct {
	Body responses.SourceResponse
}

// SearchHackerNews handles GET /discussions/hackernews
func (h *DiscussionsHandler) SearchHackerNews(ctx context.Context, input *HackerNewsInput) (*SourceOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.HackerNewsEnabled) {
		return nil, huma.Error503ServiceUnavailable(MsgHackerNewsDisabled)
	}

	pageCtx, err := input.Page()
	if err != nil {
		return nil, toHumaError(err)
	}

	outcome := h.service.SearchHackerNews(ctx, pageCtx.URL)
	return sourceOutput(pageCtx, outcome)
}

// RedditInput defines the input for the SearchReddit operation
type RedditInput struct {
	requests.RedditRequest
}

// SearchReddit handles GET /discussions/reddit
func (h *DiscussionsHandler) SearchReddit(ctx context.Context, input *RedditInput) (*SourceOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.RedditEnabled) {
		return nil, huma.Error503ServiceUnavailable(MsgRedditDisabled)
	}

	pageCtx, err := input.Page()
	if err != nil {
		return nil, toHumaError(err)
	}
	modes, err := input.SearchModes()
	if err != nil {
		return nil, toHumaError(err)
	}

	ctx = page.WithRequestTitle(ctx, pageCtx.URL, pageCtx.Title)
	outcome := h.service.SearchReddit(ctx, pageCtx, modes)
	return sourceOutput(pageCtx, outcome)
}

func sourceOutput(pageCtx domain.PageContext, outcome discussions.Outcome) (*SourceOutput, error) {
	response, err := mappers.ToSourceResponse(pageCtx, outcome)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SourceOutput{Body: *response}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *DiscussionsHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	flags := make(map[string]bool)
	for flag, enabled := range h.flags.GetAllFlags() {
		flags[string(flag)] = enabled
	}
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok", Flags: flags}}, nil
}
