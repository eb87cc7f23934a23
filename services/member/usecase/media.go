package usecase

import (
	"path/filepath"
	"strings"

	"memberhub/domain"
)

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true, ".mkv": true, ".webm": true, ".3gp": true,
}

// ClassifyGallery types a whole gallery from its first file. Mixed galleries
// inherit the first file's type; per-file tagging is a possible future
// redesign, but the current behavior is relied upon.
func ClassifyGallery(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(paths[0]))
	if videoExtensions[ext] {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}
