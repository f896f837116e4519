package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
)

type mockMinio struct {
	bucketExistsFn       func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn         func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	putObjectFn          func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	statObjectFn         func(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	removeObjectFn       func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	presignedGetObjectFn func(ctx context.Context, bucketName, objectName string, expiry time.Duration, params url.Values) (*url.URL, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (m *mockMinio) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.statObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, params url.Values) (*url.URL, error) {
	return m.presignedGetObjectFn(ctx, bucketName, objectName, expiry, params)
}

func TestInitBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		wantMakeCalled bool
		wantErr        error
	}{
		{
			name:           "bucket exists, no create",
			exists:         true,
			wantMakeCalled: false,
		},
		{
			name:           "bucket does not exist, create succeeds",
			exists:         false,
			wantMakeCalled: true,
		},
		{
			name:      "BucketExists error bubbles up",
			existsErr: errors.New("exist fail"),
			wantErr:   ErrInternal,
		},
		{
			name:           "MakeBucket access denied",
			exists:         false,
			makeErr:        minio.ErrorResponse{Code: "AccessDenied"},
			wantMakeCalled: true,
			wantErr:        ErrUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			makeCalled := false
			mock := &mockMinio{
				bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
					return tc.exists, tc.existsErr
				},
				makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
					makeCalled = true
					if bucketName != "assets" {
						t.Errorf("bucket = %q; want assets", bucketName)
					}
					return tc.makeErr
				},
			}
			s := &Storage{client: mock}

			err := s.InitBucket("assets")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v; want %v", err, tc.wantErr)
			}
			if makeCalled != tc.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tc.wantMakeCalled)
			}
		})
	}
}

func TestSaveFile(t *testing.T) {
	var gotBody string
	mock := &mockMinio{
		putObjectFn: func(_ context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			if bucket != "assets" || key != "p/image/x.png" {
				t.Errorf("bucket/key = %q/%q", bucket, key)
			}
			if size != 5 {
				t.Errorf("size = %d; want 5", size)
			}
			if opts.ContentType != "image/png" {
				t.Errorf("content type = %q; want image/png", opts.ContentType)
			}
			b, _ := io.ReadAll(r)
			gotBody = string(b)
			return minio.UploadInfo{}, nil
		},
	}
	s := &Storage{client: mock}

	if err := s.SaveFile(context.Background(), "assets", "p/image/x.png", strings.NewReader("hello"), 5, "image/png"); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if gotBody != "hello" {
		t.Errorf("body = %q; want hello", gotBody)
	}
}

func TestSaveFile_Error(t *testing.T) {
	mock := &mockMinio{
		putObjectFn: func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket"}
		},
	}
	s := &Storage{client: mock}

	err := s.SaveFile(context.Background(), "nope", "k", strings.NewReader(""), 0, "")
	if !errors.Is(err, ErrBucketNotFound) {
		t.Errorf("err = %v; want ErrBucketNotFound", err)
	}
}

func TestFileExists(t *testing.T) {
	tests := []struct {
		name    string
		statErr error
		want    bool
		wantErr error
	}{
		{"exists", nil, true, nil},
		{"no such key", minio.ErrorResponse{Code: "NoSuchKey"}, false, nil},
		{"other error", errors.New("boom"), false, ErrInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockMinio{
				statObjectFn: func(context.Context, string, string, minio.StatObjectOptions) (minio.ObjectInfo, error) {
					return minio.ObjectInfo{}, tc.statErr
				},
			}
			s := &Storage{client: mock}

			got, err := s.FileExists(context.Background(), "exports", "k.json")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v; want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("exists = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestRemoveFile(t *testing.T) {
	called := false
	mock := &mockMinio{
		removeObjectFn: func(_ context.Context, bucket, key string, _ minio.RemoveObjectOptions) error {
			called = true
			if bucket != "assets" || key != "k" {
				t.Errorf("bucket/key = %q/%q", bucket, key)
			}
			return nil
		},
	}
	s := &Storage{client: mock}
	if err := s.RemoveFile(context.Background(), "assets", "k"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	if !called {
		t.Error("RemoveObject not called")
	}
}

func TestGeneratePresignedDownloadURL(t *testing.T) {
	fake, _ := url.Parse("https://cdn.example.com/download?x=1")
	mock := &mockMinio{
		presignedGetObjectFn: func(_ context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
			if bucket != "assets" || key != "p/video/clip.mp4" {
				t.Errorf("bucket/key = %q/%q", bucket, key)
			}
			if expiry != 15*time.Minute {
				t.Errorf("expiry = %v; want %v", expiry, 15*time.Minute)
			}
			want := `inline; filename="clip.mp4"`
			if disp := params.Get("response-content-disposition"); disp != want {
				t.Errorf("disposition = %q; want %q", disp, want)
			}
			return fake, nil
		},
	}
	s := &Storage{client: mock}

	out, err := s.GeneratePresignedDownloadURL(context.Background(), "assets", "p/video/clip.mp4", 15*time.Minute, "clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != fake.String() {
		t.Errorf("url = %q; want %q", out, fake.String())
	}
}

func TestGeneratePresignedDownloadURL_Error(t *testing.T) {
	mock := &mockMinio{
		presignedGetObjectFn: func(context.Context, string, string, time.Duration, url.Values) (*url.URL, error) {
			return nil, errors.New("fail-get")
		},
	}
	s := &Storage{client: mock}

	if _, err := s.GeneratePresignedDownloadURL(context.Background(), "b", "k", time.Minute, ""); !errors.Is(err, ErrInternal) {
		t.Errorf("err = %v; want ErrInternal", err)
	}
}
