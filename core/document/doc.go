// Package document loads model exports for comparison.
//
// A source is either a local file path or an object reference of the form
// "s3://bucket/path/model.json". Files ending in .yaml or .yml are decoded as YAML;
// everything else is decoded as JSON, with numbers kept as json.Number so large
// numeric node ids survive unchanged.
//
// # Errors
//
// Failures are wrapped around two sentinels so callers can classify them with
// errors.Is:
//   - ErrInputNotFound: the file or object is missing or unreadable.
//   - ErrInvalidDocument: the content does not parse.
//
// Both carry the offending source in their message.
package document
