package loaders

import (
	"asset-loader/core/asset"
	"asset-loader/core/fetch"

	"go.uber.org/zap"
)

// Descriptors returns the built-in loaders in their registration order:
// json, text, image, audio, video, binary and blob.
func Descriptors(fetcher fetch.Fetcher, logger *zap.Logger) []asset.Descriptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return []asset.Descriptor{
		{Key: "json", Match: asset.MatchPattern("json"), Load: fileLoader(kindJSON, fetcher, logger)},
		{Key: "text", Match: asset.MatchPattern("txt"), Load: fileLoader(kindText, fetcher, logger)},
		{Key: "image", Match: asset.MatchPattern(imagePattern), Load: imageLoader(fetcher, logger)},
		{Key: "audio", Match: matchMedia("audio"), Load: mediaLoader("audio", fetcher, logger)},
		{Key: "video", Match: matchMedia("video"), Load: mediaLoader("video", fetcher, logger)},
		{Key: "binary", Match: asset.MatchPattern("bin"), Load: fileLoader(kindBinary, fetcher, logger)},
		{Key: "blob", Load: fileLoader(kindBlob, fetcher, logger)},
	}
}

// Register adds the built-in loaders to reg.
func Register(reg *asset.Registry, fetcher fetch.Fetcher, logger *zap.Logger) error {
	for _, d := range Descriptors(fetcher, logger) {
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding only the built-in loaders.
func NewRegistry(fetcher fetch.Fetcher, logger *zap.Logger) *asset.Registry {
	return asset.NewRegistry(Descriptors(fetcher, logger)...)
}
