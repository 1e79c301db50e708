// Package assets exposes the asset loader over HTTP.
//
// # HTTP Endpoints
//
//   - GET /assets/loaders : Lists registered loaders in resolution order.
//   - POST /assets/load : Loads one request, body {"request": "<url>" | {"url": ..., "type": ...}}.
//   - POST /assets/all : Loads a batch and fails on the first error.
//   - POST /assets/any : Loads a batch and reports failed items as null.
//
// Batch bodies carry {"requests": [...]} for lists or {"requests": {...}} for
// keyed groups; the results mirror that shape. Every completed item is listed
// under "progress" in completion order.
//
// Resolution errors map to 400, missing resources to 404 and upstream status
// errors to 502.
package assets
