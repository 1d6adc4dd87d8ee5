package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

var ErrStorageFailed = errors.New("storage failed")
var ErrInvalidKey = errors.New("invalid storage key")

type Item struct {
	Path string
	URL  string
}

type Storage interface {
	Put(ctx context.Context, namespace, key, contentType string, source io.Reader) (*Item, error)
	Remove(ctx context.Context, namespace, key string) error
}
