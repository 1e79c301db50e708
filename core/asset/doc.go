// Package asset provides the loader registry and the dispatcher that turns a
// URL or descriptor into a loaded asset.
//
// # Resolution
//
// A Registry holds Descriptors in registration order. A request is resolved
// by, in order of precedence:
//   - an ad hoc loader function given as its type (Func), which bypasses the registry;
//   - an explicit type key (Type), compared case-insensitively;
//   - the URL's extension, offered to each descriptor's matcher in registration order.
//
// Register specific matchers before generic ones: the first match wins.
//
// # Requests
//
// A request is a URL string, a Spec, a map with "url" and "type" keys, or an
// Awaitable (such as a *Future) that is passed through unchanged. Every field
// other than the type reaches the loader verbatim through Options.
//
// # Batches
//
// All and Any load a Batch (an ordered List or a Keyed group) concurrently and
// return Results in the same shape:
//   - All fails fast with the first item error. Items in flight are not cancelled.
//   - Any captures item errors per slot and only fails on invalid input.
//
// Progress is reported once per completed item through WithProgress or
// WithProgressChan.
//
// # Usage
//
//	reg := asset.NewRegistry()
//	loaders.Register(reg, fetcher, logger)
//	l := asset.NewLoader(reg, logger)
//
//	text, err := l.Load(ctx, "fixtures/test.txt")
//
//	res, err := l.Any(ctx, asset.Keyed(map[string]asset.Request{
//	    "image": "fixtures/baboon.png",
//	    "data":  map[string]any{"url": "fixtures/data", "type": "json"},
//	}), asset.WithProgress(func(ev asset.ProgressEvent) {
//	    log.Info("progress", zap.Float64("progress", ev.Progress))
//	}))
package asset
