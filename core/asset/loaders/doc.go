// Package loaders provides the built-in asset loaders.
//
// # Keys
//
//   - json: .json files, decoded into any.
//   - text: .txt files, returned as a string.
//   - image: common image extensions, returned as *Image.
//   - audio, video: extensions whose MIME type is audio/* or video/*, returned as *Media.
//   - binary: .bin files, returned as []byte.
//   - blob: explicit type only, returned as *Blob.
//
// File loaders (json, text, binary, blob) report failures as
// "<reason> while loading file <url>", where the reason is "Resource not
// found" for a 404 and "Unexpected HTTP Status Code: N" for other non-2xx
// statuses. Image and media loaders report "Error while loading <kind> at <url>".
//
// File loaders pass the descriptor's "method", "headers" and "body" on to the
// transport, so an authenticated endpoint can be loaded like any other file.
package loaders
