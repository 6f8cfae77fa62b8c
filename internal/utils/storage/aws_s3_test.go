package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recipe-box-backend/domain"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	putInputs    []*s3.PutObjectInput
	deleteInputs []*s3.DeleteObjectInput
	putErr       error
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putInputs = append(f.putInputs, params)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInputs = append(f.deleteInputs, params)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStore() (AwsS3, *fakeS3Client) {
	client := &fakeS3Client{}
	return NewAwsS3WithClient(client, "recipe-images", "https://cdn.example.com"), client
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	store, client := newTestStore()

	_, err := store.UploadImage(context.Background(), []byte("x"), "image/jpeg", 6*1024*1024, "Big Cake")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, client.putInputs)
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	store, client := newTestStore()

	_, err := store.UploadImage(context.Background(), []byte("x"), "image/gif", 1024*1024, "Animated Cake")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
	assert.Empty(t, client.putInputs)
}

func TestUploadImageBuildsSlugKeyAndURL(t *testing.T) {
	store, client := newTestStore()

	url, err := store.UploadImage(context.Background(), make([]byte, 1024*1024), "image/png", 1024*1024, "Kung Pao Chicken")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/kung-pao-chicken-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	require.Len(t, client.putInputs, 1)
	put := client.putInputs[0]
	assert.Equal(t, "recipe-images", *put.Bucket)
	assert.Equal(t, "image/png", *put.ContentType)
	assert.Equal(t, "Kung Pao Chicken", put.Metadata["recipe-name"])
	assert.NotEmpty(t, put.Metadata["uploaded-at"])
	assert.True(t, strings.HasSuffix(url, *put.Key))
}

func TestUploadImageTransliteratesHanNames(t *testing.T) {
	store, client := newTestStore()

	url, err := store.UploadImage(context.Background(), []byte("png"), "image/png", 3, "宫保鸡丁")
	require.NoError(t, err)

	assert.Contains(t, url, "/gong-bao-ji-ding-")
	require.Len(t, client.putInputs, 1)
}

func TestUploadImageFallsBackWhenNameHasNoUsableCharacters(t *testing.T) {
	store, _ := newTestStore()

	url, err := store.UploadImage(context.Background(), []byte("png"), "image/webp", 3, "!!!")
	require.NoError(t, err)

	assert.Contains(t, url, "/recipe-")
	assert.True(t, strings.HasSuffix(url, ".webp"), url)
}

func TestUploadImageReportsStorageUnavailable(t *testing.T) {
	store, client := newTestStore()
	client.putErr = errors.New("dial tcp: connection refused")

	_, err := store.UploadImage(context.Background(), []byte("png"), "image/png", 3, "Kung Pao Chicken")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestDeleteImageExtractsKeyFromURL(t *testing.T) {
	store, client := newTestStore()

	err := store.DeleteImage(context.Background(), "https://cdn.example.com/kung-pao-chicken-1700000000000.png")
	require.NoError(t, err)

	require.Len(t, client.deleteInputs, 1)
	assert.Equal(t, "kung-pao-chicken-1700000000000.png", *client.deleteInputs[0].Key)
	assert.Equal(t, "recipe-images", *client.deleteInputs[0].Bucket)
}

func TestDeleteImageRejectsURLWithoutKey(t *testing.T) {
	store, client := newTestStore()

	err := store.DeleteImage(context.Background(), "https://cdn.example.com/")
	require.Error(t, err)
	assert.Empty(t, client.deleteInputs)
}
