package extract

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectInfo describes one object in the remote store.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ObjectStore is the slice of object-storage behavior extraction needs.
// The S3 client satisfies it in production; tests inject MemoryStore.
type ObjectStore interface {
	// List returns all objects under the given key prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Get returns the content of an object.
	Get(ctx context.Context, key string) ([]byte, error)

	// Metadata returns the user metadata attached to an object.
	Metadata(ctx context.Context, key string) (map[string]string, error)

	// Path returns the store-qualified path recorded for a key, e.g.
	// "s3://bucket/key".
	Path(key string) string
}

// S3Store is the AWS-backed ObjectStore bound to a single bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store creates an S3-backed store for the bucket in the given
// region, using the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket, region string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &S3Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// List implements ObjectStore using paginated ListObjectsV2 calls.
func (s *S3Store) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			info := ObjectInfo{Key: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				info.LastModified = *obj.LastModified
			}
			objects = append(objects, info)
		}
	}
	return objects, nil
}

// Get implements ObjectStore.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	return data, nil
}

// Metadata implements ObjectStore.
func (s *S3Store) Metadata(ctx context.Context, key string) (map[string]string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object %q: %w", key, err)
	}
	return out.Metadata, nil
}

// Path returns the store-qualified path for a key, recorded alongside
// image metadata.
func (s *S3Store) Path(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, key)
}

var _ ObjectStore = (*S3Store)(nil)
