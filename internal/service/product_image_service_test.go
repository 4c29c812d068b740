package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gdh/parayo/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileStore struct {
	saved map[string][]byte
	err   error
}

func (s *fakeFileStore) SaveImage(path string, src io.Reader) error {
	if s.err != nil {
		return s.err
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	s.saved[path] = content

	return nil
}

func multipartImage(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/product_images", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("image")
	require.NoError(t, err)

	return header
}

func TestUploadImage(t *testing.T) {
	repo := newFakeProductImageRepository()
	store := &fakeFileStore{}
	svc := CreateNewProductImageService(repo, store)

	resp, err := svc.UploadImage(context.Background(), multipartImage(t, "photo.png", []byte("png-bytes")))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/images/\d{8}/[0-9a-f-]{36}\.png$`), resp.Path)
	assert.NotZero(t, resp.ImageID)

	saved, ok := store.saved[resp.Path]
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), saved)

	stored, ok := repo.images[resp.ImageID]
	require.True(t, ok)
	assert.Equal(t, resp.Path, stored.Path)
	assert.Nil(t, stored.ProductID)
}

func TestUploadImageWithoutExtension(t *testing.T) {
	repo := newFakeProductImageRepository()
	svc := CreateNewProductImageService(repo, &fakeFileStore{})

	_, err := svc.UploadImage(context.Background(), multipartImage(t, "photo", []byte("bytes")))

	assert.ErrorIs(t, err, errs.ErrInvalidImageFile)
	assert.Empty(t, repo.images)
}

func TestUploadImageStoreFailure(t *testing.T) {
	repo := newFakeProductImageRepository()
	store := &fakeFileStore{err: errs.ErrImageSaveFailed}
	svc := CreateNewProductImageService(repo, store)

	_, err := svc.UploadImage(context.Background(), multipartImage(t, "photo.jpg", []byte("bytes")))

	assert.ErrorIs(t, err, errs.ErrImageSaveFailed)
	assert.Empty(t, repo.images)
}
