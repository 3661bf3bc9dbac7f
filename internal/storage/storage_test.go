package storage

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveExistsDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads/"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "resumes/1/cv.pdf", strings.NewReader("%PDF"), "application/pdf"))

	data, err := os.ReadFile(filepath.Join(dir, "resumes", "1", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	exists, err := s.Exists(ctx, "resumes/1/cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/uploads/resumes/1/cv.pdf", s.GetURL("resumes/1/cv.pdf"))

	require.NoError(t, s.Delete(ctx, "resumes/1/cv.pdf"))
	exists, err = s.Exists(ctx, "resumes/1/cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, "resumes/1/cv.pdf"))
}

func TestLocalStorage_PathStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: filepath.Join(dir, "base")})
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "base", "escape.txt"))
	assert.NoError(t, err)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}

type fakeS3 struct {
	s3iface.S3API
	deleted []string
	headErr error
}

func (f *fakeS3) DeleteObjectWithContext(ctx aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObjectWithContext(ctx aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{}, nil
}

type fakeUploader struct {
	key         string
	contentType string
	body        string
}

func (f *fakeUploader) Upload(in *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return f.UploadWithContext(context.Background(), in, opts...)
}

func (f *fakeUploader) UploadWithContext(ctx aws.Context, in *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.key = aws.StringValue(in.Key)
	f.contentType = aws.StringValue(in.ContentType)
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3manager.UploadOutput{}, nil
}

func TestS3Storage(t *testing.T) {
	client := &fakeS3{}
	uploader := &fakeUploader{}
	s := newS3Storage(client, uploader, "resumes-bucket", "https://cdn.example.com/")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "resumes/7/a.pdf", strings.NewReader("pdf"), "application/pdf"))
	assert.Equal(t, "resumes/7/a.pdf", uploader.key)
	assert.Equal(t, "application/pdf", uploader.contentType)
	assert.Equal(t, "pdf", uploader.body)

	assert.Equal(t, "https://cdn.example.com/resumes/7/a.pdf", s.GetURL("resumes/7/a.pdf"))

	require.NoError(t, s.Delete(ctx, "resumes/7/a.pdf"))
	assert.Equal(t, []string{"resumes/7/a.pdf"}, client.deleted)

	exists, err := s.Exists(ctx, "resumes/7/a.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	client.headErr = awserr.NewRequestFailure(awserr.New("NotFound", "not found", nil), http.StatusNotFound, "req-1")
	exists, err = s.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(Config{Type: "s3"})
	assert.Error(t, err)
}
