package asset_test

import (
	"testing"

	"asset-loader/core/asset"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Simple", "fixtures/baboon.png", ".png"},
		{"QueryAndFragment", "a/b/c.png?x=1#y", ".png"},
		{"Query", "fixtures/baboon.png?cachebust=213", ".png"},
		{"FragmentOnly", "model.obj#part", ".obj"},
		{"DotInQuery", "file?name=a.png", ""},
		{"DotInDirectory", "assets.v2/baboon-no-ext", ""},
		{"NoExtension", "fixtures/baboon-no-ext", ""},
		{"CasePreserved", "IMAGES/PHOTO.JPG", ".JPG"},
		{"MultipleDots", "archive.tar.gz", ".gz"},
		{"AbsoluteURL", "https://cdn.example.com/a/b.json?v=3", ".json"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := asset.Extension(tt.url)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, asset.Extension(tt.url))
		})
	}
}

func TestMatchPattern(t *testing.T) {
	match := asset.MatchPattern("jpe?g|png")

	assert.True(t, match(".png"))
	assert.True(t, match(".PNG"))
	assert.True(t, match(".jpeg"))
	assert.True(t, match(".Jpg"))
	assert.False(t, match(".gif"))
	assert.False(t, match(".pngx"))
	assert.False(t, match("png"))
}

func TestMatchExtensions(t *testing.T) {
	match := asset.MatchExtensions("obj", ".MTL")

	assert.True(t, match(".obj"))
	assert.True(t, match(".OBJ"))
	assert.True(t, match(".mtl"))
	assert.False(t, match(".txt"))
	assert.False(t, match(""))
}
