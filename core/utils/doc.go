// Package utils provides common utility functions for the asset-loader application.
// It holds the value coercion used to read loader options, which arrive as
// loosely typed values from JSON bodies, CLI flags or Go callers.
package utils
