package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	appconfig "learnhub/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var S3Client *s3.Client
var BucketName string
var PublicBaseURL string

// InitStorage configures the S3-compatible object store client (Cloudflare
// R2 style endpoint). When the bucket is not configured the client stays
// nil and callers fall back to local-disk uploads.
func InitStorage() {
	cfg := appconfig.AppConfig

	if cfg.StorageBucket == "" || cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" || cfg.StorageEndpoint == "" {
		log.Println("[STORAGE] Object storage not configured. Uploads fall back to local disk.")
		return
	}

	BucketName = cfg.StorageBucket

	// Normalize endpoint - remove trailing slash
	endpoint := strings.TrimSuffix(cfg.StorageEndpoint, "/")

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.StorageRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.StorageAccessKey, cfg.StorageSecretKey, "")),
	)
	if err != nil {
		log.Fatalf("[STORAGE] Failed to load storage config: %v", err)
	}

	S3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	PublicBaseURL = strings.TrimSuffix(cfg.StoragePublicURL, "/")
	if PublicBaseURL == "" {
		PublicBaseURL = endpoint + "/" + BucketName
	}

	log.Printf("[STORAGE] Object storage initialized. Endpoint: %s, Bucket: %s", endpoint, BucketName)
}

// Enabled reports whether the object store client is configured
func Enabled() bool {
	return S3Client != nil
}

// UploadFile uploads body under objectKey with the given content type and
// returns the public URL of the stored object
func UploadFile(ctx context.Context, objectKey, contentType string, body io.Reader) (string, error) {
	if S3Client == nil {
		return "", fmt.Errorf("storage client not initialized. Call InitStorage() first")
	}

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(BucketName),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectKey, BucketName, err)
	}

	return PublicURL(objectKey), nil
}

// DeleteFile deletes an object from the store. Callers treat failures as
// non-fatal: they log and continue.
func DeleteFile(ctx context.Context, objectKey string) error {
	if S3Client == nil {
		return fmt.Errorf("storage client not initialized. Call InitStorage() first")
	}

	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := S3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", objectKey, BucketName, err)
	}

	return nil
}

// PublicURL builds the public URL for an object key
func PublicURL(objectKey string) string {
	return PublicBaseURL + "/" + objectKey
}

// KeyFromURL maps a public URL back to its object key. It returns an empty
// string for URLs that do not belong to the configured store (e.g. local
// uploads or external links).
func KeyFromURL(url string) string {
	if PublicBaseURL == "" || !strings.HasPrefix(url, PublicBaseURL+"/") {
		return ""
	}
	return strings.TrimPrefix(url, PublicBaseURL+"/")
}
