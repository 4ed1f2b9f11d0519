package aws

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Location is a parsed s3://bucket/key destination.
type S3Location struct {
	Bucket string
	Key    string
}

func (l S3Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// IsS3URL reports whether dest points at S3 rather than the local disk.
func IsS3URL(dest string) bool {
	return strings.HasPrefix(dest, "s3://")
}

// ParseS3URL splits an s3:// destination. A destination ending in "/" (or
// naming only the bucket) is a prefix and gets filename appended.
func ParseS3URL(dest, filename string) (S3Location, error) {
	if !IsS3URL(dest) {
		return S3Location{}, fmt.Errorf("not an s3 url: %q", dest)
	}
	rest := strings.TrimPrefix(dest, "s3://")
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return S3Location{}, fmt.Errorf("missing bucket in %q", dest)
	}
	if key == "" || strings.HasSuffix(key, "/") {
		if filename == "" {
			return S3Location{}, fmt.Errorf("missing object key in %q", dest)
		}
		key = path.Join(key, filename)
	}
	return S3Location{Bucket: bucket, Key: key}, nil
}

// UploadDocument writes a Markdown document to S3 and returns its location
func (c *Client) UploadDocument(ctx context.Context, loc S3Location, content string) (string, error) {
	uploader := manager.NewUploader(c.S3)
	out, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        strings.NewReader(content),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", loc, err)
	}
	if out.Location != "" {
		return out.Location, nil
	}
	return loc.String(), nil
}
