// Package api provides the HTTP API layer for the Discussions application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging and rate limiting
//
// # Endpoints
//
//	GET /discussions?url=&title=&modes=url,title,domain
//	GET /discussions/hackernews?url=
//	GET /discussions/reddit?url=&title=&modes=
//	GET /health
//
// Every result carries the rendered discussion-item HTML so browser
// clients can insert it as is. OpenAPI is served at /openapi.json and
// interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	defer stop()
//
//	handlers.NewDiscussionsHandler(service, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. Invalid URLs and unknown search modes
// are 400s; search failures are reported inside the outcome, not as
// HTTP errors.
package api
