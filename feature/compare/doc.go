// Package compare exposes node set comparison over HTTP.
//
// # Endpoints
//
//   - POST /compare takes two inline documents and returns the comparison result.
//   - POST /compare/objects takes two object keys of the configured bucket.
//   - GET /compare/objects/report renders the report of two objects as an attachment.
//
// Object documents are extracted once per ETag and kept in the mapping cache, so
// repeated comparisons against the same baseline only read the changed object.
//
// Invalid requests and undecodable documents answer 400, missing objects 404, and
// anything else 500. Every error body has the form {"error": "..."}.
package compare
