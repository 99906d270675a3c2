// Copyright 2025 Revsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/revsight/revsight/blob"
)

// Store implements blob.Store against AWS S3 or any S3-compatible endpoint.
type Store struct {
	client *awss3.Client
	bucket string
	logger *slog.Logger
}

// NewStore creates a store for the given bucket using the default AWS
// credential chain (environment, shared config, instance role).
//
// Returns blob.Store interface to enforce abstraction.
func NewStore(ctx context.Context, bucket string) (blob.Store, error) {
	if bucket == "" {
		return nil, blob.ErrBucketRequired
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Store{
		client: awss3.NewFromConfig(cfg),
		bucket: bucket,
		logger: slog.Default().With("component", "s3-store", "bucket", bucket),
	}, nil
}

// List returns all object keys under the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := awss3.NewListObjectsV2Paginator(s.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Error("failed to list objects", "prefix", prefix, "err", err)
			return nil, fmt.Errorf("failed to list %q: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}

	s.logger.Debug("listed objects", "prefix", prefix, "count", len(keys))
	return keys, nil
}

// Download fetches the object stored at key.
func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", blob.ErrNotFound, key)
		}
		s.logger.Error("failed to download object", "key", key, "err", err)
		return nil, fmt.Errorf("failed to download %q: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Upload stores data at key, overwriting any existing object.
func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		s.logger.Error("failed to upload object", "key", key, "err", err)
		return fmt.Errorf("failed to upload %q: %w", key, err)
	}

	s.logger.Debug("uploaded object", "key", key, "bytes", len(data))
	return nil
}
