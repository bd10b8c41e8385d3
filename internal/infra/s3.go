package infra

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// InitS3Client builds the S3 client for the image blob store from
// environment configuration. S3_ENDPOINT is optional and supports
// S3-compatible providers.
func InitS3Client() *s3.Client {
	accessKeyID := os.Getenv("S3_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("S3_SECRET_ACCESS_KEY")
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		log.Fatalf("Error loading S3 configuration: %v", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
