package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultPictureExpiry = 5 * time.Minute

// ObjectPresigner is satisfied by *s3.PresignClient
type ObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// PictureSigner turns stored profile-pic keys into short-lived read URLs
type PictureSigner struct {
	Presigner ObjectPresigner
	Bucket    string
	Expiry    time.Duration
}

// NewPictureSigner builds a signer backed by the S3 client for cfg
func NewPictureSigner(cfg aws.Config, bucket string) *PictureSigner {
	return &PictureSigner{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		Expiry:    defaultPictureExpiry,
	}
}

// ResolveURL returns absolute URLs unchanged and presigns bare object keys
func (ps *PictureSigner) ResolveURL(ctx context.Context, ref string) (string, error) {
	if ref == "" || IsAbsoluteURL(ref) {
		return ref, nil
	}

	expiry := ps.Expiry
	if expiry <= 0 {
		expiry = defaultPictureExpiry
	}
	params := &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}
	presigned, err := ps.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign picture %s: %w", ref, err)
	}
	return presigned.URL, nil
}

func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
