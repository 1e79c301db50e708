package loaders

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"asset-loader/core/asset"
	"asset-loader/core/fetch"

	"go.uber.org/zap"
)

const imagePattern = "jpg|jpeg|svg|png|gif|webp|bmp|tga|tif|apng|wbpm|ico"

// Image is a loaded image. Width and Height are zero for formats that are
// only identified, not decoded (svg, webp, bmp, tga, tif, ico, wbmp).
type Image struct {
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	CrossOrigin string `json:"crossOrigin,omitempty"`
	Data        []byte `json:"-"`
}

// decoded lists the extensions whose bytes must decode for the load to succeed.
var decoded = map[string]bool{
	".png":  true,
	".apng": true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var errEmptyImage = errors.New("empty image body")

// signatures identify formats the registered decoders do not cover.
var signatures = []struct {
	format string
	match  func(b []byte) bool
}{
	{"webp", func(b []byte) bool {
		return len(b) >= 12 && bytes.HasPrefix(b, []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP"))
	}},
	{"bmp", func(b []byte) bool { return len(b) >= 26 && bytes.HasPrefix(b, []byte("BM")) }},
	{"tif", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("II*\x00")) || bytes.HasPrefix(b, []byte("MM\x00*"))
	}},
	{"ico", func(b []byte) bool { return len(b) >= 6 && bytes.HasPrefix(b, []byte{0, 0, 1, 0}) }},
}

// headerless holds checks for formats without a magic number. They are too
// weak to sniff arbitrary bytes, so they apply only to a matching extension.
var headerless = map[string]struct {
	format string
	match  func(b []byte) bool
}{
	".tga":  {"tga", isTGA},
	".wbpm": {"wbmp", isWBMP},
	".wbmp": {"wbmp", isWBMP},
}

// isTGA checks the fixed 18-byte TGA header fields.
func isTGA(b []byte) bool {
	if len(b) < 18 || b[1] > 1 {
		return false
	}
	switch b[2] {
	case 1, 2, 3, 9, 10, 11:
	default:
		return false
	}
	switch b[16] {
	case 8, 15, 16, 24, 32:
		return true
	}
	return false
}

// isWBMP checks for a type 0 header followed by a non-zero width and height.
func isWBMP(b []byte) bool {
	return len(b) >= 4 && b[0] == 0 && b[1] == 0 && b[2] != 0 && b[3] != 0
}

// identify names the format of an image the decoders rejected, or returns "".
func identify(ext string, body []byte) string {
	for _, sig := range signatures {
		if sig.match(body) {
			return sig.format
		}
	}
	if h, ok := headerless[ext]; ok && h.match(body) {
		return h.format
	}
	return ""
}

func imageLoader(fetcher fetch.Fetcher, logger *zap.Logger) asset.LoadFunc {
	return func(ctx context.Context, opts asset.Options) (asset.Asset, error) {
		img, err := loadImage(ctx, fetcher, opts.URL)
		if err != nil {
			logger.Debug("Image load failed", zap.String("url", opts.URL), zap.Error(err))
			return nil, &LoadError{Kind: "image", URL: opts.URL, Err: err}
		}
		if origin, ok := opts.String("crossOrigin"); ok {
			img.CrossOrigin = origin
		}
		return img, nil
	}
}

func loadImage(ctx context.Context, fetcher fetch.Fetcher, url string) (*Image, error) {
	res, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := statusErr(res.Status); err != nil {
		return nil, err
	}
	if len(res.Body) == 0 {
		return nil, errEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(res.Body))
	if err == nil {
		return &Image{Format: format, Width: cfg.Width, Height: cfg.Height, Data: res.Body}, nil
	}

	ext := strings.ToLower(asset.Extension(url))
	if decoded[ext] {
		return nil, err
	}
	if ext == ".svg" || strings.HasPrefix(res.ContentType, "image/svg") {
		if !bytes.Contains(res.Body, []byte("<svg")) {
			return nil, err
		}
		return &Image{Format: "svg", Data: res.Body}, nil
	}
	if format := identify(ext, res.Body); format != "" {
		return &Image{Format: format, Data: res.Body}, nil
	}
	return nil, err
}
