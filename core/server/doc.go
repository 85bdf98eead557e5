// Package server holds the HTTP server configuration used by serve mode.
//
// The Config struct defines the listen port, the optional API key, and the body
// limit for inline documents. It is embedded by core/config and read by the
// serve command.
package server
