package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	headErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3Storage_SaveExistsDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	s := newS3Storage(fake, "bucket", "./uploads/", "https://cdn.example.com")

	require.NoError(t, s.Save(ctx, "cv.pdf", strings.NewReader("pdf"), "application/pdf"))
	assert.Equal(t, []byte("pdf"), fake.objects["uploads/cv.pdf"])
	assert.Equal(t, "application/pdf", fake.types["uploads/cv.pdf"])

	ok, err := s.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete(ctx, "cv.pdf"))
	ok, err = s.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS3Storage_ExistsPropagatesErrors(t *testing.T) {
	fake := newFakeS3()
	fake.headErr = errors.New("network down")
	s := newS3Storage(fake, "bucket", "", "https://cdn.example.com")

	_, err := s.Exists(context.Background(), "cv.pdf")
	assert.Error(t, err)
}

func TestS3Storage_GetURL(t *testing.T) {
	s := newS3Storage(newFakeS3(), "bucket", "uploads", "https://cdn.example.com")

	url, err := s.GetURL(context.Background(), "me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/me.png", url)

	_, err = s.GetURL(context.Background(), "../me.png")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
