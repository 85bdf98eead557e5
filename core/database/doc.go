// Package database connects to the MySQL database that stores run history.
//
// The connection is optional for the CLI: only `--record` and the `history`
// command need it. Connect verifies the connection with a bounded ping so a
// missing database fails fast instead of hanging the run.
package database
