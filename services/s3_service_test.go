package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	input   *s3.GetObjectInput
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = params
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.s3.amazonaws.com/" + aws.ToString(params.Key) + "?sig=1"}, nil
}

func TestPictureSignerPresignsBareKeys(t *testing.T) {
	presigner := &fakePresigner{}
	signer := &PictureSigner{Presigner: presigner, Bucket: "roomie-pics"}

	url, err := signer.ResolveURL(context.Background(), "/profiles/c-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/profiles/c-1.jpg?sig=1", url)
	assert.Equal(t, "roomie-pics", aws.ToString(presigner.input.Bucket))
	assert.Equal(t, defaultPictureExpiry, presigner.expires)
}

func TestPictureSignerLeavesAbsoluteURLs(t *testing.T) {
	presigner := &fakePresigner{}
	signer := &PictureSigner{Presigner: presigner, Bucket: "roomie-pics", Expiry: time.Minute}

	for _, ref := range []string{"", "https://cdn.example.com/a.jpg", "http://cdn.example.com/b.jpg"} {
		url, err := signer.ResolveURL(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, ref, url)
	}
	assert.Nil(t, presigner.input)
}

func TestPictureSignerWrapsErrors(t *testing.T) {
	signer := &PictureSigner{Presigner: &fakePresigner{err: errors.New("no creds")}, Bucket: "b"}
	_, err := signer.ResolveURL(context.Background(), "k.jpg")
	assert.ErrorContains(t, err, "no creds")
}
