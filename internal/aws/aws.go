// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/staranto/bgplan/internal/log"
)

// Scheme prefixes every S3 collection URI.
const Scheme = "s3://"

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
}

// Option customizes how AWS config is loaded. With no options the shell's
// credential chain is used (AWS_PROFILE, ~/.aws/config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion overrides the region.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points the S3 client at a custom endpoint, such as a local
// S3-compatible server. Path-style addressing is used when set.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

func buildOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoadAWSConfig loads AWS SDK v2 config, applying profile and region
// overrides.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	o := buildOptions(opts...)
	log.Debugf("aws opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return awsv2.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewS3 builds an S3 client from cfg. An endpoint option switches the client
// to that base endpoint with path-style addressing.
func NewS3(cfg awsv2.Config, opts ...Option) *s3v2.Client {
	o := buildOptions(opts...)
	client := s3v2.NewFromConfig(cfg, func(so *s3v2.Options) {
		if o.endpoint != "" {
			so.BaseEndpoint = awsv2.String(o.endpoint)
			so.UsePathStyle = true
		}
	})
	log.Debugf("s3 client created: endpoint=%s", o.endpoint)
	return client
}

// ObjectGetter is the part of the S3 client used to read collections.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Location is a parsed s3:// URI.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return Scheme + l.Bucket + "/" + l.Key
}

// IsURI reports whether uri uses the s3 scheme.
func IsURI(uri string) bool {
	return strings.HasPrefix(strings.ToLower(uri), Scheme)
}

// ParseURI splits s3://bucket/key. Both parts are required.
func ParseURI(uri string) (Location, error) {
	if !IsURI(uri) {
		return Location{}, fmt.Errorf("not an s3 uri: %s", uri)
	}

	bucket, key, _ := strings.Cut(uri[len(Scheme):], "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("s3 uri needs a bucket and key: %s", uri)
	}

	return Location{Bucket: bucket, Key: key}, nil
}

// Fetch reads the whole object at loc.
func Fetch(ctx context.Context, svc ObjectGetter, loc Location) ([]byte, error) {
	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.Bucket),
		Key:    awsv2.String(loc.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	log.Debugf("s3 object read: location=%s, bytes=%d", loc, len(data))
	return data, nil
}
