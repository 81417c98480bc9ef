package gcs

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var Client *storage.Client

// InitGCS connects to Google Cloud Storage and verifies the bucket.
// Uses GOOGLE_APPLICATION_CREDENTIALS when set, otherwise the default
// credential chain.
func InitGCS(bucketName string) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	var err error
	Client, err = storage.NewClient(ctx, opts...)
	if err != nil {
		log.Fatalf("Failed to connect to Google Cloud Storage: %v", err)
	}

	_, err = Client.Bucket(bucketName).Attrs(ctx)
	if err != nil {
		log.Fatalf("Cannot access bucket %s: %v", bucketName, err)
	}
	log.Printf("Connected to Google Cloud Storage, bucket %s ready", bucketName)
}

func Close() {
	if Client != nil {
		Client.Close()
	}
}
