package utils

import "strings"

// ThumbnailPath derives the thumbnail location for an uploaded image by
// inserting "-thumb" before the extension. Thumbnails are always encoded as
// JPEG, so a non-jpg original additionally gets ".jpg" appended to keep the
// stored name and the actual format in sync.
func ThumbnailPath(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path + "-thumb.jpg"
	}

	ext := path[i+1:]
	thumbnailPath := path[:i] + "-thumb." + ext
	if ext != "jpg" {
		thumbnailPath += ".jpg"
	}

	return thumbnailPath
}

// FileExtension returns the extension of a file name without the leading dot,
// or an empty string when the name has none.
func FileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ""
	}

	return filename[i+1:]
}
