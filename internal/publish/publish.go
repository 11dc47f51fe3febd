package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/jsxdom/internal/config"
	"github.com/vango-dev/jsxdom/internal/errors"
)

const (
	defaultRegion = "us-east-1"
	contentType   = "text/html; charset=utf-8"
)

// API is the part of the S3 client the publisher uses.
type API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithClient replaces the S3 client built from the configuration.
func WithClient(api API) Option {
	return func(p *Publisher) { p.client = api }
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// WithEnv replaces os.LookupEnv for credential lookup.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(p *Publisher) { p.lookupEnv = lookup }
}

// Publisher uploads pages to one bucket.
type Publisher struct {
	client       API
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
	lookupEnv    func(string) (string, bool)
}

// Result describes an uploaded page.
type Result struct {
	Bucket string
	Key    string
	ETag   string
}

// New creates a Publisher. It fails with P001 when no bucket is set.
func New(cfg config.PublishConfig, opts ...Option) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("P001")
	}
	p := &Publisher{
		bucket:       cfg.Bucket,
		prefix:       cfg.Prefix,
		cacheControl: cfg.CacheControl,
		lookupEnv:    os.LookupEnv,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.client == nil {
		p.client = NewClient(cfg, p.lookupEnv)
	}
	return p, nil
}

// NewClient builds an S3 client for cfg. A custom endpoint and path-style
// addressing serve S3-compatible stores such as MinIO.
func NewClient(cfg config.PublishConfig, lookupEnv func(string) (string, bool)) *s3.Client {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	awsCfg := aws.Config{
		Region:      region,
		Credentials: aws.NewCredentialsCache(envCredentials(lookupEnv)),
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})
}

func envCredentials(lookup func(string) (string, bool)) aws.CredentialsProviderFunc {
	return func(context.Context) (aws.Credentials, error) {
		id, _ := lookup("AWS_ACCESS_KEY_ID")
		secret, _ := lookup("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("P002").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set.")
		}
		token, _ := lookup("AWS_SESSION_TOKEN")
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    token,
			Source:          "EnvironmentVariables",
		}, nil
	}
}

// Key returns the object key for a page.
func Key(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	name = strings.TrimLeft(name, "/") + ".html"
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// Publish uploads html as the page name. Failures are P002.
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (Result, error) {
	key := Key(p.prefix, name)
	in := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(html))),
		Metadata:      map[string]string{"generator": "jsxdom"},
	}
	if p.cacheControl != "" {
		in.CacheControl = aws.String(p.cacheControl)
	}

	out, err := p.client.PutObject(ctx, in)
	if err != nil {
		return Result{}, errors.New("P002").
			WithDetail("Uploading %s to bucket %s failed.", key, p.bucket).
			Wrap(err)
	}

	res := Result{Bucket: p.bucket, Key: key}
	if out != nil && out.ETag != nil {
		res.ETag = *out.ETag
	}
	p.logger.Info("page published", "bucket", p.bucket, "key", key, "bytes", len(html))
	return res, nil
}
