// Package core contains the business logic for the Discussions API.
// It is framework-agnostic and is shared by the HTTP API, the CLI,
// the terminal popup and the library client.
//
// The core package is organized into several sub-packages:
//
// - domain: Discussion results, page snapshots and search modes
// - discussions: Hacker News and Reddit search pipelines and the fallback chain
// - popup: Popup controller with view switching, mode debounce and notifications
// - render: Result rendering to HTML nodes and plain text
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, tabs)
//
// # Usage Example
//
//	import (
//	    "discussions-app-api/core/discussions"
//	    "discussions-app-api/core/domain"
//	    "discussions-app-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := discussions.NewService(deps, titles, discussions.DefaultOptions())
//
//	page, _ := domain.NewPageContext("https://example.com/post", "")
//	result := service.Lookup(ctx, page, domain.DefaultSearchModes())
//	fmt.Println(result.Reddit.Message())
package core
