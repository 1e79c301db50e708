// Package manifest stores named asset batches in the database and runs them.
//
// A manifest holds a list or keyed group of requests and the batch mode
// ("all" or "any") to load them in. The feature is only loaded when a database
// connection is configured; the table is migrated with GORM on startup.
//
// # HTTP Endpoints
//
//   - GET /manifests : Lists manifests.
//   - PUT /manifests/:name : Creates or replaces a manifest.
//   - GET /manifests/:name : Returns a manifest.
//   - DELETE /manifests/:name : Removes a manifest.
//   - POST /manifests/:name/load : Runs the stored batch.
package manifest
