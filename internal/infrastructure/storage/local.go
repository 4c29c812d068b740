package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/gdh/parayo/pkg/utils"
	"github.com/rs/zerolog/log"
)

const (
	thumbnailSize    = 300
	thumbnailQuality = 80
)

// FileStore persists an uploaded image and its derived thumbnail under a
// relative path such as /images/20210101/uuid.png.
type FileStore interface {
	SaveImage(path string, src io.Reader) error
}

type LocalFileStore struct {
	baseDir string
}

func CreateNewLocalFileStore(baseDir string) *LocalFileStore {
	return &LocalFileStore{baseDir: baseDir}
}

// SaveImage writes the original bytes to disk and renders a center-cropped
// square JPEG thumbnail next to it.
func (s *LocalFileStore) SaveImage(path string, src io.Reader) error {
	targetFile := filepath.Join(s.baseDir, path)

	err := os.MkdirAll(filepath.Dir(targetFile), 0o755)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return errs.ErrImageSaveFailed
	}

	dst, err := os.Create(targetFile)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return errs.ErrImageSaveFailed
	}

	_, err = io.Copy(dst, src)
	dst.Close()
	if err != nil {
		log.Error().Err(err).Str("component", "SaveImage").Msg("")
		return errs.ErrImageSaveFailed
	}

	return s.saveThumbnail(targetFile, filepath.Join(s.baseDir, utils.ThumbnailPath(path)))
}

func (s *LocalFileStore) saveThumbnail(originalFile string, thumbnailFile string) error {
	img, err := imaging.Open(originalFile)
	if err != nil {
		log.Error().Err(err).Str("component", "saveThumbnail").Msg("")
		return errs.ErrInvalidImageFile
	}

	thumbnail := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)

	err = imaging.Save(thumbnail, thumbnailFile, imaging.JPEGQuality(thumbnailQuality))
	if err != nil {
		log.Error().Err(err).Str("component", "saveThumbnail").Msg("")
		return errs.ErrImageSaveFailed
	}

	return nil
}
