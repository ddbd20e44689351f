package assets

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// R2Bucket presigns reads against a Cloudflare R2 bucket.
type R2Bucket struct {
	presigner  *s3.PresignClient
	bucketName string
}

// NewR2Bucket creates an R2 client.
// endpoint should be "https://<account-id>.r2.cloudflarestorage.com".
func NewR2Bucket(accessKeyID, secretAccessKey, endpoint, bucketName string) *R2Bucket {
	cfg := aws.Config{
		Region: "auto",
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token, not used for R2
		),
		BaseEndpoint: aws.String(endpoint),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// R2 requires path-style addressing
		o.UsePathStyle = true
	})

	return &R2Bucket{
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
	}
}

// PresignGetObject generates a presigned GET URL for the given object key,
// valid for the specified duration. Signing is local; no request is sent.
func (b *R2Bucket) PresignGetObject(ctx context.Context, objectKey string, duration time.Duration) (string, error) {
	req, err := b.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return req.URL, nil
}

// BucketSource redirects every asset request to a presigned bucket URL.
// Objects are not checked for existence; a missing key fails at the bucket.
type BucketSource struct {
	bucket *R2Bucket
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

func NewBucketSource(bucket *R2Bucket, keyPrefix string, ttl time.Duration, logger *zap.Logger) *BucketSource {
	return &BucketSource{bucket: bucket, prefix: keyPrefix, ttl: ttl, logger: logger}
}

func (s *BucketSource) Serve(w http.ResponseWriter, r *http.Request, name string) bool {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return false
	}
	url, err := s.bucket.PresignGetObject(r.Context(), s.prefix+name, s.ttl)
	if err != nil {
		s.logger.Error("presign asset", zap.String("key", s.prefix+name), zap.Error(err))
		http.Error(w, "asset unavailable", http.StatusBadGateway)
		return true
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
	return true
}
