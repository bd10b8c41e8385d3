package blob_fx

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"

	"placemark/internal/infra"
	"placemark/pkg/blobstore"
)

var Module = fx.Provide(
	provideS3Client, provideBlobStore)

func provideS3Client() *s3.Client {
	return infra.InitS3Client()
}

func provideBlobStore(client *s3.Client) blobstore.Store {
	return blobstore.NewS3Store(client, os.Getenv("S3_BUCKET"), os.Getenv("S3_PUBLIC_URL"))
}
