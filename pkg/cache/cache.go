// Package cache provides content-addressed caching for rendered graph
// artifacts. The pipeline keys artifacts by a hash of the source text plus
// every option that changes the output, so a cache entry is valid forever
// and refreshes are purely an explicit choice.
package cache

import (
	"context"
	"time"

	"github.com/graphplot/graphplot/pkg/plot"
)

// TTLArtifact is the default lifetime of a cached artifact. Artifacts are
// content-addressed, so the TTL only bounds disk growth.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the options that distinguish one rendered artifact
// from another for the same source text.
type ArtifactKeyOpts struct {
	Layout      string
	Format      string
	Width       float64
	Height      float64
	EqualAspect bool
	Palette     []plot.Color
}

// Keyer derives cache keys from content hashes and options.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a namespaced sha-256 over the
// source hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sourceHash, opts)
}
