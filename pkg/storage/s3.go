package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"lifemate-backend/internal/domain"
)

// S3Provider represents the S3-compatible storage provider
type S3Provider string

const (
	S3ProviderAWS    S3Provider = "aws"
	S3ProviderWasabi S3Provider = "wasabi"
	S3ProviderR2     S3Provider = "r2"
)

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
	"ap-southeast-2": "s3.ap-southeast-2.wasabisys.com",
}

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	Provider        S3Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Prefix          string
	// Endpoint overrides the provider default, e.g. an R2 account endpoint.
	Endpoint string
	// PublicURL is the CDN or public bucket base used in artifact URLs.
	PublicURL string
}

// endpoint returns the base endpoint for non-AWS providers, empty for AWS.
func (c S3Config) endpoint() string {
	if c.Endpoint != "" {
		if strings.HasPrefix(c.Endpoint, "http://") || strings.HasPrefix(c.Endpoint, "https://") {
			return c.Endpoint
		}
		return "https://" + c.Endpoint
	}
	if c.Provider == S3ProviderWasabi {
		if ep, ok := WasabiEndpoints[c.Region]; ok {
			return "https://" + ep
		}
		return "https://s3.ap-southeast-1.wasabisys.com"
	}
	return ""
}

// NewS3Client creates an S3 client for AWS, Wasabi or R2.
// Static credentials are used when given, otherwise the default AWS chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := cfg.endpoint()
	if endpoint == "" {
		return s3.NewFromConfig(awsCfg), nil
	}
	// Wasabi and R2 require a custom endpoint and path-style addressing
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	}), nil
}

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client S3API
	cfg    S3Config
}

func NewS3Store(client S3API, cfg S3Config) *S3Store {
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
	return &S3Store{client: client, cfg: cfg}
}

func (s *S3Store) Store(ctx context.Context, data []byte, folderKey, fileName string) (*domain.StoredObject, error) {
	storageID, err := newStorageID(folderKey, fileName)
	if err != nil {
		return nil, err
	}
	if err := checkPDF(data); err != nil {
		return nil, err
	}
	key := applyPrefix(s.cfg.Prefix, storageID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(pdfContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put object %s: %w", key, err)
	}

	return &domain.StoredObject{
		URL:       s.objectURL(key),
		StorageID: storageID,
		ByteSize:  int64(len(data)),
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, storageID string) error {
	if !validStorageID(storageID) {
		return errInvalidKey
	}
	key := applyPrefix(s.cfg.Prefix, storageID)

	// DeleteObject succeeds on missing keys, so check with HeadObject first to report absence.
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		var nsk *types.NoSuchKey
		if errors.As(err, &nf) || errors.As(err, &nsk) {
			return domain.ErrArtifactNotFound
		}
		return fmt.Errorf("s3 head object %s: %w", key, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) objectURL(key string) string {
	if s.cfg.PublicURL != "" {
		return s.cfg.PublicURL + "/" + key
	}
	if ep := s.cfg.endpoint(); ep != "" {
		return strings.TrimRight(ep, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

var _ domain.ArtifactStore = (*S3Store)(nil)
