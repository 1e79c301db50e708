package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileFetcher serves plain paths and file:// URLs from a filesystem.
type FileFetcher struct {
	fs afero.Fs
	// rooted resolves every path from the filesystem root so ".." cannot
	// climb out of a base path.
	rooted bool
}

// NewFileFetcher creates a file fetcher over fsys.
func NewFileFetcher(fsys afero.Fs) *FileFetcher {
	return &FileFetcher{fs: fsys}
}

// NewOSFileFetcher creates a file fetcher confined to baseDir on the OS
// filesystem. Relative and absolute paths both resolve under it, and an empty
// baseDir means the working directory.
func NewOSFileFetcher(baseDir string) *FileFetcher {
	if baseDir == "" {
		baseDir = "."
	}
	if abs, err := filepath.Abs(baseDir); err == nil {
		baseDir = abs
	}
	return &FileFetcher{fs: afero.NewBasePathFs(afero.NewOsFs(), baseDir), rooted: true}
}

// Fetch implements Fetcher. Request options do not apply to files.
func (f *FileFetcher) Fetch(ctx context.Context, url string, _ ...Option) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := f.pathOf(url)
	body, err := afero.ReadFile(f.fs, name)
	if err != nil {
		return f.failure(name, err)
	}

	return &Response{
		Status:      http.StatusOK,
		ContentType: contentTypeOf(name),
		Size:        int64(len(body)),
		Body:        body,
	}, nil
}

// Stat implements Fetcher.
func (f *FileFetcher) Stat(ctx context.Context, url string, _ ...Option) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := f.pathOf(url)
	info, err := f.fs.Stat(name)
	if err != nil {
		return f.failure(name, err)
	}
	if info.IsDir() {
		return &Response{Status: http.StatusNotFound, Size: -1}, nil
	}

	return &Response{Status: http.StatusOK, ContentType: contentTypeOf(name), Size: info.Size()}, nil
}

func (f *FileFetcher) failure(name string, err error) (*Response, error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Response{Status: http.StatusNotFound, Size: -1}, nil
	case errors.Is(err, fs.ErrPermission):
		return &Response{Status: http.StatusForbidden, Size: -1}, nil
	default:
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
}

// pathOf strips the file:// scheme, the query and the fragment.
func (f *FileFetcher) pathOf(url string) string {
	url = strings.TrimPrefix(url, "file://")
	if idx := strings.IndexAny(url, "?#"); idx != -1 {
		url = url[:idx]
	}
	if f.rooted {
		url = path.Clean("/" + url)
	}
	return filepath.FromSlash(url)
}
