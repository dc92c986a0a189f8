// Package observability provides Prometheus metric instruments shared across
// the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheRequests counts cache-aside lookups by key prefix and outcome
	// (hit or miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_cache_requests_total",
		Help: "Total number of cache lookups by outcome",
	}, []string{"prefix", "outcome"})

	// PostListings counts listing requests by scope (feed, category, profile).
	PostListings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_post_listings_total",
		Help: "Total number of post listing requests by scope",
	}, []string{"scope"})
)
