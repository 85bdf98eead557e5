// Package middleware groups the HTTP middleware of serve mode.
//
//   - auth checks the X-API-Key header when a key is configured.
//   - rayid tags each request with an id used in logs and the X-Ray-ID header.
package middleware
