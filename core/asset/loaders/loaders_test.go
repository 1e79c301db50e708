package loaders_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asset-loader/core/asset"
	"asset-loader/core/asset/loaders"
	"asset-loader/core/fetch"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// statusFetcher answers every request with a fixed status.
type statusFetcher struct {
	status int
}

func (f statusFetcher) Fetch(ctx context.Context, url string, _ ...fetch.Option) (*fetch.Response, error) {
	return &fetch.Response{Status: f.status, Size: -1}, nil
}

func (f statusFetcher) Stat(ctx context.Context, url string, _ ...fetch.Option) (*fetch.Response, error) {
	return f.Fetch(ctx, url)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func setupLoader(t *testing.T) *asset.Loader {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string][]byte{
		"fixtures/data.json":  []byte(`{"name":"hero","hp":3}`),
		"fixtures/bad.json":   []byte(`{"name":`),
		"fixtures/note.txt":   []byte("hello, world!"),
		"fixtures/bytes.bin":  {0, 1, 2, 3},
		"fixtures/logo.png":   pngBytes(t, 4, 3),
		"fixtures/broken.png": []byte("not a png"),
		"fixtures/icon.svg":   []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		"fixtures/tile.webp":  []byte("RIFF0000WEBP"),
		"fixtures/fake.webp":  []byte("definitely not an image"),
		"fixtures/sprite":     pngBytes(t, 2, 2),
		"fixtures/notes":      []byte("hello, world!"),
		"fixtures/icon.ico":   {0, 0, 1, 0, 1, 0, 16, 16},
		"fixtures/skin.tga":   {0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 4, 0, 32, 8},
		"fixtures/fake.tga":   []byte("not a targa image at all"),
		"fixtures/beep.mp3":   []byte("ID3\x03\x00"),
		"fixtures/clip.mp4":   []byte("\x00\x00\x00\x18ftypmp42"),
	}
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fsys, name, body, 0644))
	}
	reg := loaders.NewRegistry(fetch.NewFileFetcher(fsys), zap.NewNop())
	return asset.NewLoader(reg, zap.NewNop())
}

func TestRegister(t *testing.T) {
	reg := asset.NewRegistry()
	require.NoError(t, loaders.Register(reg, statusFetcher{status: 200}, nil))
	assert.Equal(t, []string{"json", "text", "image", "audio", "video", "binary", "blob"}, reg.Keys())

	err := loaders.Register(reg, statusFetcher{status: 200}, nil)
	assert.ErrorIs(t, err, asset.ErrDuplicateKey)
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, "audio", loaders.MediaKind(".mp3"))
	assert.Equal(t, "audio", loaders.MediaKind(".OGG"))
	assert.Equal(t, "video", loaders.MediaKind(".webm"))
	assert.Equal(t, "video", loaders.MediaKind(".mp4"))
	assert.Equal(t, "", loaders.MediaKind(".png"))
	assert.Equal(t, "", loaders.MediaKind(".json"))
}

func TestFileLoaders(t *testing.T) {
	l := setupLoader(t)
	ctx := context.Background()

	t.Run("JSON", func(t *testing.T) {
		v, err := l.Load(ctx, "fixtures/data.json")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "hero", "hp": float64(3)}, v)
	})

	t.Run("Text", func(t *testing.T) {
		v, err := l.Load(ctx, "fixtures/note.txt")
		require.NoError(t, err)
		assert.Equal(t, "hello, world!", v)
	})

	t.Run("TextByType", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{"url": "fixtures/data.json", "type": "text"})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"hero","hp":3}`, v)
	})

	t.Run("Binary", func(t *testing.T) {
		v, err := l.Load(ctx, "fixtures/bytes.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 1, 2, 3}, v)
	})

	t.Run("Blob", func(t *testing.T) {
		v, err := l.Load(ctx, asset.Spec{URL: "fixtures/note.txt", Type: asset.Type("blob")})
		require.NoError(t, err)
		blob, ok := v.(*loaders.Blob)
		require.True(t, ok)
		assert.EqualValues(t, 13, blob.Size)
		assert.Contains(t, blob.Type, "text/plain")
		assert.Equal(t, "hello, world!", string(blob.Data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := l.Load(ctx, "fixtures/missing.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, loaders.ErrNotFound)
		assert.EqualError(t, err, "Resource not found while loading file fixtures/missing.json")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := l.Load(ctx, "fixtures/bad.json")
		require.Error(t, err)
		var fileErr *loaders.FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, "fixtures/bad.json", fileErr.URL)
		assert.Contains(t, err.Error(), "while loading file fixtures/bad.json")
	})

	t.Run("UnexpectedStatus", func(t *testing.T) {
		l := asset.NewLoader(loaders.NewRegistry(statusFetcher{status: 503}, nil), nil)
		_, err := l.Load(ctx, "https://cdn.example.com/data.json")
		require.Error(t, err)
		var statusErr *loaders.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 503, statusErr.Code)
		assert.EqualError(t, err, "Unexpected HTTP Status Code: 503 while loading file https://cdn.example.com/data.json")
	})
}

func TestImageLoader(t *testing.T) {
	l := setupLoader(t)
	ctx := context.Background()

	t.Run("PNG", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{"url": "fixtures/logo.png", "crossOrigin": "anonymous"})
		require.NoError(t, err)
		img, ok := v.(*loaders.Image)
		require.True(t, ok)
		assert.Equal(t, "png", img.Format)
		assert.Equal(t, 4, img.Width)
		assert.Equal(t, 3, img.Height)
		assert.Equal(t, "anonymous", img.CrossOrigin)
	})

	t.Run("SVG", func(t *testing.T) {
		v, err := l.Load(ctx, "fixtures/icon.svg")
		require.NoError(t, err)
		img := v.(*loaders.Image)
		assert.Equal(t, "svg", img.Format)
		assert.Zero(t, img.Width)
	})

	t.Run("IdentifiedFormats", func(t *testing.T) {
		for url, format := range map[string]string{
			"fixtures/tile.webp": "webp",
			"fixtures/icon.ico":  "ico",
			"fixtures/skin.tga":  "tga",
		} {
			v, err := l.Load(ctx, url)
			require.NoError(t, err, url)
			assert.Equal(t, format, v.(*loaders.Image).Format, url)
		}
	})

	t.Run("NoExtensionDecodes", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{"url": "fixtures/sprite", "type": "image"})
		require.NoError(t, err)
		assert.Equal(t, "png", v.(*loaders.Image).Format)
		assert.Equal(t, 2, v.(*loaders.Image).Width)
	})

	t.Run("RejectsNonImageBytes", func(t *testing.T) {
		tests := []struct {
			name string
			req  asset.Request
			url  string
		}{
			{"NoExtension", map[string]any{"url": "fixtures/notes", "type": "image"}, "fixtures/notes"},
			{"WebP", "fixtures/fake.webp", "fixtures/fake.webp"},
			{"TGA", "fixtures/fake.tga", "fixtures/fake.tga"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v, err := l.Load(ctx, tt.req)
				assert.Nil(t, v)
				var loadErr *loaders.LoadError
				require.ErrorAs(t, err, &loadErr)
				assert.Equal(t, "image", loadErr.Kind)
				assert.EqualError(t, err, "Error while loading image at "+tt.url)
				assert.ErrorIs(t, err, image.ErrFormat)
			})
		}
	})

	t.Run("Corrupt", func(t *testing.T) {
		_, err := l.Load(ctx, "fixtures/broken.png")
		assert.EqualError(t, err, "Error while loading image at fixtures/broken.png")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := l.Load(ctx, "fixtures/nope.jpg")
		assert.EqualError(t, err, "Error while loading image at fixtures/nope.jpg")
		assert.ErrorIs(t, err, loaders.ErrNotFound)
	})
}

func TestMediaLoader(t *testing.T) {
	l := setupLoader(t)
	ctx := context.Background()

	t.Run("AudioDefaults", func(t *testing.T) {
		v, err := l.Load(ctx, "fixtures/beep.mp3")
		require.NoError(t, err)
		m, ok := v.(*loaders.Media)
		require.True(t, ok)
		assert.Equal(t, "audio", m.Kind)
		assert.Equal(t, "audio/mpeg", m.MIMEType)
		assert.Equal(t, loaders.EventCanPlay, m.Ready)
		assert.Equal(t, 1.0, m.Volume)
		assert.Equal(t, 1.0, m.PlaybackRate)
		assert.EqualValues(t, 5, m.Size)
		assert.NotNil(t, m.Data)
	})

	t.Run("Video", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{"url": "fixtures/clip.mp4", "event": "CanPlayThrough"})
		require.NoError(t, err)
		m := v.(*loaders.Media)
		assert.Equal(t, "video", m.Kind)
		assert.Equal(t, loaders.EventCanPlayThrough, m.Ready)
	})

	t.Run("LoadedMetadataSkipsBody", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{"url": "fixtures/clip.mp4", "event": "loadedmetadata"})
		require.NoError(t, err)
		m := v.(*loaders.Media)
		assert.Equal(t, loaders.EventLoadedMetadata, m.Ready)
		assert.Nil(t, m.Data)
		assert.EqualValues(t, 12, m.Size)
	})

	t.Run("OptionsForwardedIndividually", func(t *testing.T) {
		v, err := l.Load(ctx, map[string]any{
			"url":          "fixtures/beep.mp3",
			"volume":       0.25,
			"playbackRate": 2,
			"currentTime":  "1.5",
			"preload":      "metadata",
			"muted":        true,
			"controls":     "yes",
			"autoPlay":     false,
			"crossOrigin":  "use-credentials",
		})
		require.NoError(t, err)
		m := v.(*loaders.Media)
		assert.Equal(t, 0.25, m.Volume)
		assert.Equal(t, 2.0, m.PlaybackRate)
		assert.Equal(t, 1.5, m.CurrentTime)
		assert.Equal(t, "metadata", m.Preload)
		assert.True(t, m.Muted)
		assert.True(t, m.Controls)
		assert.False(t, m.AutoPlay)
		assert.Equal(t, "use-credentials", m.CrossOrigin)
	})

	t.Run("InvalidVolume", func(t *testing.T) {
		_, err := l.Load(ctx, map[string]any{"url": "fixtures/beep.mp3", "volume": 3})
		assert.EqualError(t, err, "Error while loading audio at fixtures/beep.mp3")
	})

	t.Run("InvalidOptionType", func(t *testing.T) {
		_, err := l.Load(ctx, map[string]any{"url": "fixtures/beep.mp3", "muted": "maybe"})
		var loadErr *loaders.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "audio", loadErr.Kind)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := l.Load(ctx, "fixtures/gone.webm")
		assert.EqualError(t, err, "Error while loading video at fixtures/gone.webm")
		assert.True(t, errors.Is(err, loaders.ErrNotFound))
	})
}

func TestLoadersInBatch(t *testing.T) {
	l := setupLoader(t)

	res, err := l.Any(context.Background(), asset.Keyed(map[string]asset.Request{
		"data":  "fixtures/data.json",
		"logo":  "fixtures/logo.png",
		"ghost": "fixtures/ghost.txt",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed())
	assert.ErrorIs(t, res.ErrKey("ghost"), loaders.ErrNotFound)
	assert.IsType(t, &loaders.Image{}, res.Get("logo"))
}

func TestFileLoaders_RequestOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"method":%q,"body":%q}`, r.Method, body)
	}))
	defer srv.Close()

	logger := zap.NewNop()
	reg := loaders.NewRegistry(fetch.NewHTTPFetcher(time.Second, ""), logger)
	l := asset.NewLoader(reg, logger)
	ctx := context.Background()

	_, err := l.Load(ctx, srv.URL+"/save.json")
	var statusErr *loaders.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)

	v, err := l.Load(ctx, map[string]any{
		"url":     srv.URL + "/save.json",
		"headers": map[string]any{"X-API-Key": "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"method": "GET", "body": ""}, v)

	v, err = l.Load(ctx, map[string]any{
		"url":     srv.URL + "/save.json",
		"method":  "POST",
		"headers": map[string]string{"X-API-Key": "secret"},
		"body":    `{"slot":2}`,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"method": "POST", "body": `{"slot":2}`}, v)

	_, err = l.Load(ctx, map[string]any{"url": srv.URL + "/save.json", "headers": "X-API-Key: secret"})
	var fileErr *loaders.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, err.Error(), "headers must be an object")
}
