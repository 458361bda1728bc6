package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/helper"
	"github.com/artloom/mediagate/common/logger"
)

func extensionFromMimeType(mimeType string) string {
	mimeType = strings.ToLower(mimeType)
	switch {
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "gif"):
		return ".gif"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	case strings.Contains(mimeType, "mp4"):
		return ".mp4"
	case strings.Contains(mimeType, "webm"):
		return ".webm"
	default:
		return ".bin"
	}
}

// Enabled reports whether result storage is configured. When false,
// UploadResult is never called and upstream URLs are passed through as-is.
func Enabled() bool {
	return config.StoreEnabled &&
		config.StoreEndpoint != "" &&
		config.StoreAccessKey != "" &&
		config.StoreSecretKey != "" &&
		config.StoreBucket != ""
}

// UploadResult stores a base64 generation result in the configured
// S3-compatible bucket and returns the public URL.
func UploadResult(ctx context.Context, base64Data string, mimeType string) (string, error) {
	if !Enabled() {
		return "", fmt.Errorf("result storage is not configured")
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	ext := extensionFromMimeType(mimeType)
	filename := fmt.Sprintf("%s-%s%s", timestamp, helper.GetRandomNumberString(8), ext)
	objectKey := path.Join("results", filename)

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.StoreRegion),
		awsconfig.WithCredentialsProvider(aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     config.StoreAccessKey,
				SecretAccessKey: config.StoreSecretKey,
			}, nil
		}))),
		awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: config.StoreEndpoint}, nil
			}),
		),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create AWS config: %w", err)
	}

	// path-style avoids TLS issues with bucket subdomains on R2/MinIO
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(config.StoreBucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload result: %w", err)
	}

	var resultUrl string
	if config.StorePublicURL != "" {
		resultUrl = fmt.Sprintf("%s/%s", config.StorePublicURL, objectKey)
	} else {
		resultUrl = fmt.Sprintf("%s/%s/%s", config.StoreEndpoint, config.StoreBucket, objectKey)
	}
	logger.SysLog(fmt.Sprintf("result uploaded to storage: %s (size: %d bytes)", resultUrl, len(data)))

	return resultUrl, nil
}
