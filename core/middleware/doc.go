// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header does not match the
//     configured key. An empty key disables the check.
//   - rayid: assigns every request an X-Ray-ID, reusing a valid incoming one,
//     and stores it in the request locals for logger.WithRayID.
//
// Both are registered globally in the start command, rayid first.
package middleware
