// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the discussion lookup logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores decoded search responses; nil disables caching
	Cache Cache

	// HTTPClient performs outbound search requests
	HTTPClient HTTPClient

	// Logger provides structured logging; nil falls back to NopLogger
	Logger Logger
}

// Log returns the configured logger or a no-op logger
func (d Dependencies) Log() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}
