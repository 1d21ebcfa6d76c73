package storage

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// blobStore keeps one object per key in a gocloud bucket
type blobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewFileStore stores each key as a file under dir, creating dir if needed
func NewFileStore(dir, prefix string) (Store, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file bucket %s", dir)
	}

	return &blobStore{bucket: bucket, prefix: prefix}, nil
}

// NewMemStore keeps keys in process memory
func NewMemStore(prefix string) (Store, error) {
	return &blobStore{bucket: memblob.OpenBucket(nil), prefix: prefix}, nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.prefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, s.prefix+key, value, opts); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

// Delete succeeds when the key is already absent
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.prefix+key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return s.bucket.Close()
}
