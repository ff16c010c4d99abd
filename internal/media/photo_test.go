package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/caregivers-platform/internal/config"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_ScalesLongSideDown(t *testing.T) {
	out, err := Normalize(bytes.NewReader(pngOf(t, 1024, 256)))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestNormalize_KeepsSmallImages(t *testing.T) {
	out, err := Normalize(bytes.NewReader(pngOf(t, 40, 60)))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 60), img.Bounds())
}

// pngClaiming rewrites the IHDR of a tiny PNG so its header states w×h.
func pngClaiming(t *testing.T, w, h uint32) []byte {
	t.Helper()
	b := pngOf(t, 1, 1)
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return b
}

func TestNormalize_RejectsOversizedDimensionsBeforeDecoding(t *testing.T) {
	data := pngClaiming(t, 12000, 12000)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 12000, cfg.Width)

	_, err = Normalize(bytes.NewReader(data))

	require.Error(t, err)
	assert.True(t, httperr.HasCode(err, "unsupported_image"))
	assert.Equal(t, "photo dimensions are too large", err.Error())
}

func TestNormalize_RejectsOversizedUploads(t *testing.T) {
	_, err := Normalize(bytes.NewReader(make([]byte, MaxUploadBytes+1)))

	require.Error(t, err)
	assert.True(t, httperr.HasCode(err, "photo_too_large"))
}

func TestNormalize_RejectsNonImages(t *testing.T) {
	_, err := Normalize(strings.NewReader("not an image"))

	require.Error(t, err)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

type memStore struct {
	keys  []string
	types []string
}

func (m *memStore) Put(_ context.Context, key, contentType string, _ []byte) (string, error) {
	m.keys = append(m.keys, key)
	m.types = append(m.types, contentType)
	return "https://cdn.test/" + key, nil
}

func TestPhotos_UploadStoresWebPUnderCaregiverPrefix(t *testing.T) {
	store := &memStore{}
	url, err := NewPhotos(store).Upload(context.Background(), 7, bytes.NewReader(pngOf(t, 10, 10)))

	require.NoError(t, err)
	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "caregivers/7/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".webp"))
	assert.Equal(t, "image/webp", store.types[0])
	assert.Equal(t, "https://cdn.test/"+store.keys[0], url)
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.test",
		publicBase(&config.Config{S3Bucket: "b", S3PublicBaseURL: "https://cdn.test/"}))
	assert.Equal(t, "http://minio:9000/b",
		publicBase(&config.Config{S3Bucket: "b", S3Endpoint: "http://minio:9000"}))
	assert.Equal(t, "https://b.s3.eu-central-1.amazonaws.com",
		publicBase(&config.Config{S3Bucket: "b", S3Region: "eu-central-1"}))
}
