package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/nijaru/yt-kb/errors"
	pkgerrors "github.com/pkg/errors"
)

type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string
	Bucket    string
	Prefix    string
}

// objectAPI is the subset of the S3 client SpacesStore uses.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// SpacesStore keeps artifacts in an S3 compatible bucket such as
// DigitalOcean Spaces.
type SpacesStore struct {
	client objectAPI
	bucket string
	prefix string
}

func NewSpacesStore(ctx context.Context, cfg SpacesConfig) (*SpacesStore, error) {
	const op = "SpacesStore.New"
	if cfg.Bucket == "" {
		return nil, errors.InvalidInput(op, nil, "spaces bucket is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, errors.StorageFailure(op, err, "unable to load SDK config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newSpacesStore(client, cfg.Bucket, cfg.Prefix), nil
}

func newSpacesStore(client objectAPI, bucket, prefix string) *SpacesStore {
	return &SpacesStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *SpacesStore) objectKey(folder, key string) string {
	return path.Join(s.prefix, folder, key+docExt)
}

func (s *SpacesStore) Load(ctx context.Context, folder, key string) (string, error) {
	const op = "SpacesStore.Load"
	objKey := s.objectKey(folder, key)

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if pkgerrors.As(err, &noKey) {
			return "", errors.NotFound(op, nil, "artifact not found: "+objKey)
		}
		return "", errors.StorageFailure(op, err, "failed to get from Spaces")
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return "", errors.StorageFailure(op, err, "failed to read object body")
	}
	return string(data), nil
}

func (s *SpacesStore) Save(ctx context.Context, folder, key, doc string) error {
	const op = "SpacesStore.Save"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(folder, key)),
		Body:        strings.NewReader(doc),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	})
	if err != nil {
		return errors.StorageFailure(op, err, "failed to save to Spaces")
	}
	return nil
}
