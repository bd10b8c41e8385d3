package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"placemark/pkg/utils"
)

// S3Store stores image blobs in an S3-compatible bucket. Handles are
// object keys under images/; URLs are built from the public URL
// pattern (one %s, replaced with the key).
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Store(client *s3.Client, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}
}

func (s *S3Store) Put(ctx context.Context, data []byte, contentType string) (Object, error) {
	key := fmt.Sprintf("images/%s", uuid.New().String())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Object{}, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	return Object{
		Handle: key,
		URL:    strings.ReplaceAll(fmt.Sprintf(s.publicURL, key), " ", "%20"),
	}, nil
}

func (s *S3Store) Remove(ctx context.Context, handle string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(handle),
	})
	if err != nil {
		// An already-removed object is a success: delete stays idempotent.
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("%w: %v", utils.ErrDeleteFailed, err)
	}
	return nil
}
