package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/impact-search/internal/config"
)

// Rate-limited paths
const (
	SearchPath     = "/api/search"
	VocabularyPath = "/api/search/vocabulary"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromSettings builds limiter configuration from the resolved rate limit settings.
func FromSettings(s config.RateLimit) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    s.DefaultLimit,
		DefaultWindow:   s.DefaultWindow,
		CleanupInterval: s.CleanupInterval,
		Whitelist:       parseIPList(s.Whitelist),
		Blacklist:       parseIPList(s.Blacklist),
		EndpointConfigs: EndpointConfigs(s),
	}
}

// EndpointConfigs returns the endpoint-specific configurations.
func EndpointConfigs(s config.RateLimit) []EndpointConfig {
	return []EndpointConfig{
		// Compilation may call the LLM: strictest limit
		{Path: SearchPath, Method: http.MethodPost, Limit: s.SearchLimit, Window: s.SearchWindow, Burst: s.SearchBurst},

		// Static vocabulary and operational endpoints are unlimited
		{Path: VocabularyPath, Method: http.MethodGet, Limit: 0},
		{Path: "/health", Method: http.MethodGet, Limit: 0},
		{Path: "/metrics", Method: http.MethodGet, Limit: 0},
	}
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
