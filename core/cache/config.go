package cache

// Config holds configuration for the extracted-mapping cache.
type Config struct {
	// Size is the maximum number of cached documents.
	Size int `mapstructure:"size" default:"128"`
	// TTLSeconds is how long a cached mapping stays fresh. Zero disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
}
