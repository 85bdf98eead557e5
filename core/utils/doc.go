// Package utils provides common utility functions for the model-compare application.
// It includes helpers for coercing loosely typed document values (decoded JSON or
// YAML) into the strings the comparison works with.
package utils
