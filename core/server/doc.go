// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// settings it reads: the listen port, the API key protecting every route, the
// request body limit and the graceful shutdown window.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure fiber.
package server
