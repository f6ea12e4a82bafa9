package model

import (
	"path"
	"strings"
)

const thumbnailSuffix = "_thumb.jpg"

// ThumbnailKey maps "portfolio/ab12.png" to "portfolio/ab12_thumb.jpg"
func ThumbnailKey(key string) string {
	return strings.TrimSuffix(key, path.Ext(key)) + thumbnailSuffix
}

// IsThumbnailKey reports whether key was produced by ThumbnailKey
func IsThumbnailKey(key string) bool {
	return strings.HasSuffix(key, thumbnailSuffix)
}
