package resizer

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/denismitr/resizefn/internal/registry"
	"github.com/denismitr/resizefn/internal/storage"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultArchiveTimeout = 30 * time.Second

// Archive persists finished renders to storage and registers them
type Archive struct {
	namespace string
	storage   storage.Storage
	registry  registry.Registry
	logger    *logrus.Logger
	timeout   time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
}

func NewArchive(
	namespace string,
	s storage.Storage,
	r registry.Registry,
	logger *logrus.Logger,
	timeout time.Duration,
) *Archive {
	if timeout <= 0 {
		timeout = defaultArchiveTimeout
	}

	return &Archive{
		namespace: namespace,
		storage:   s,
		registry:  r,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

func (a *Archive) saveAsync(originalName string, originalSize int, result *manipulator.Result, body []byte) {
	a.wg.Add(1)

	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		render, err := a.save(ctx, originalName, originalSize, result, body)
		if err != nil {
			a.logger.Errorln(err)
			return
		}

		a.logger.WithFields(logrus.Fields{
			"id":   render.ID.String(),
			"path": render.Path,
		}).Infoln("render archived")
	}()
}

func (a *Archive) save(
	ctx context.Context,
	originalName string,
	originalSize int,
	result *manipulator.Result,
	body []byte,
) (*media.Render, error) {
	renderID := a.registry.GenerateID()
	filename := renderFilename(originalName, result.Transformation)
	key := media.ComputeRenderKey(renderID, filename)

	item, err := a.storage.Put(ctx, a.namespace, key, result.Mime(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "could not archive render %s", renderID)
	}

	render := &media.Render{
		ID:              renderID,
		OriginalName:    originalName,
		OriginalSize:    originalSize,
		SourceExtension: result.SourceExtension,
		Mode:            string(result.Transformation.Mode()),
		Filename:        filename,
		Key:             key,
		Namespace:       a.namespace,
		Path:            item.Path,
		Width:           result.Dimensions.Width,
		Height:          result.Dimensions.Height,
		Size:            len(body),
		Quality:         result.Quality,
		Mime:            result.Mime(),
		Status:          media.Active,
		CreatedAt:       a.now().UTC(),
	}

	if err := a.registry.CreateRender(ctx, render); err != nil {
		if rmErr := a.storage.Remove(ctx, a.namespace, key); rmErr != nil {
			return nil, errors.Wrapf(err, "orphaned object %s could not be removed: %v", key, rmErr)
		}

		return nil, err
	}

	return render, nil
}

func (a *Archive) render(ctx context.Context, id media.ID) (*media.Render, error) {
	return a.registry.GetRenderByID(ctx, id)
}

func (a *Archive) wait() {
	a.wg.Wait()
}

func renderFilename(originalName string, t manipulator.Transformation) string {
	name := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	prefix := slug.Make(name)
	if prefix == "" {
		prefix = "upload"
	}

	return prefix + "_" + t.Filename()
}
