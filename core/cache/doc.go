// Package cache keeps extracted node mappings of stored model exports.
//
// Serve mode compares objects in a bucket, often the same few versions again and
// again. Mappings are cached per object version (bucket, key and ETag), so a new
// upload under the same key is never served stale. Entries expire after a TTL and
// the least recently used ones are evicted beyond the configured size. Concurrent
// requests for the same version share one download through singleflight.
package cache
