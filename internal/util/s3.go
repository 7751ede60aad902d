package util

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func createBucketIfNotExists(s3 *minio.Client, bucketName string) error {
	exists, err := s3.BucketExists(context.Background(), bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err = s3.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

type FileUploadOptions struct {
	// Object key inside the bucket, for example "documents/123/contract.pdf".
	// When empty the original file name is used.
	ObjectKey   string
	ContentType string
	Bucket      string
	S3          *minio.Client
}

func UploadFileToS3ByFileHeader(fileHeader *multipart.FileHeader, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	objectKey := fuo.ObjectKey
	if objectKey == "" {
		objectKey = AddUniquePrefixToFileName(SanitizeFileName(fileHeader.Filename))
	}

	contentType := fuo.ContentType
	if contentType == "" {
		contentType = fileHeader.Header.Get("Content-Type")
	}

	info, err := fuo.S3.PutObject(
		context.Background(),
		fuo.Bucket,
		objectKey,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// UploadFileToS3ByBytes uploads an in-memory payload such as a rendered hanko
// image or a generated QR code.
func UploadFileToS3ByBytes(data []byte, fuo *FileUploadOptions) (minio.UploadInfo, error) {
	if err := createBucketIfNotExists(fuo.S3, fuo.Bucket); err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	info, err := fuo.S3.PutObject(
		context.Background(),
		fuo.Bucket,
		fuo.ObjectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: fuo.ContentType,
		},
	)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return info, nil
}

// GetPresignedURL returns a temporary download link for a stored object. File
// links are never exposed publicly, owners fetch them through this.
func GetPresignedURL(ctx context.Context, s3 *minio.Client, bucket, objectKey string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	presigned, err := s3.PresignedGetObject(ctx, bucket, objectKey, expiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", objectKey, err)
	}

	return presigned.String(), nil
}

func RemoveFileFromS3(ctx context.Context, s3 *minio.Client, bucket, objectKey string) error {
	if err := s3.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", objectKey, err)
	}

	return nil
}
