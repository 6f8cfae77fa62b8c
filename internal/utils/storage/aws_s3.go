package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"recipe-box-backend/domain"
	"recipe-box-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

const MaxImageSize = 5 * 1024 * 1024

const defaultPublicURL = "https://recipes.example.com"

type (
	AwsS3 interface {
		// UploadImage validates and stores an image, returning its public URL.
		UploadImage(ctx context.Context, data []byte, contentType string, size int64, recipeName string) (string, error)
		// DeleteImage removes the object the public URL points at.
		DeleteImage(ctx context.Context, imageURL string) error
	}

	s3API interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client    s3API
		bucket    string
		publicURL string
	}
)

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	publicURL := utils.GetConfig("S3_PUBLIC_URL")
	if publicURL == "" {
		publicURL = defaultPublicURL
	}

	return &awsS3{
		client:    s3.NewFromConfig(cfg),
		bucket:    utils.GetConfig("AWS_S3_BUCKET"),
		publicURL: publicURL,
	}
}

// NewAwsS3WithClient wires an explicit client; tests use it with a fake.
func NewAwsS3WithClient(client s3API, bucket, publicURL string) AwsS3 {
	if publicURL == "" {
		publicURL = defaultPublicURL
	}
	return &awsS3{client: client, bucket: bucket, publicURL: publicURL}
}

func (s *awsS3) UploadImage(ctx context.Context, data []byte, contentType string, size int64, recipeName string) (string, error) {
	if !isAllowedType(contentType) {
		return "", domain.ErrUnsupportedMediaType
	}
	if size > MaxImageSize {
		return "", domain.ErrFileTooLarge
	}

	extension := contentType[strings.Index(contentType, "/")+1:]
	key := fmt.Sprintf("%s-%d.%s", utils.Slugify(recipeName), time.Now().UnixMilli(), extension)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-at": time.Now().UTC().Format(time.RFC3339),
			"recipe-name": recipeName,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return strings.TrimSuffix(s.publicURL, "/") + "/" + key, nil
}

func (s *awsS3) DeleteImage(ctx context.Context, imageURL string) error {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return fmt.Errorf("image URL has no object key: %s", imageURL)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func isAllowedType(contentType string) bool {
	for _, allowed := range AllowImage {
		if contentType == allowed {
			return true
		}
	}
	return false
}
