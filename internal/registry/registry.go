package registry

import (
	"context"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/pkg/errors"
)

var ErrRegistryReadFailed = errors.New("registry read error")
var ErrRegistryWriteFailed = errors.New("registry write error")
var ErrEntityNotFound = errors.New("entity not found")
var ErrInvalidID = errors.New("invalid ID")

type Registry interface {
	GenerateID() media.ID
	CreateRender(ctx context.Context, render *media.Render) error
	GetRenderByID(ctx context.Context, ID media.ID) (*media.Render, error)
}
