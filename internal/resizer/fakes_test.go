package resizer

import (
	"context"
	"io"
	"io/ioutil"
	"sync"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/denismitr/resizefn/internal/registry"
	"github.com/denismitr/resizefn/internal/storage"
	"github.com/pkg/errors"
)

const testRenderID = media.ID("5ff9dca506c37f6f5b95cd8a")

type memoryStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	mimes     map[string]string
	removed   []string
	putErr    error
	removeErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		objects: make(map[string][]byte),
		mimes:   make(map[string]string),
	}
}

func (s *memoryStorage) Put(
	_ context.Context,
	namespace, key, contentType string,
	source io.Reader,
) (*storage.Item, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}

	b, err := ioutil.ReadAll(source)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := namespace + "/" + key
	s.objects[path] = b
	s.mimes[path] = contentType

	return &storage.Item{Path: path, URL: "http://storage.local/" + path}, nil
}

func (s *memoryStorage) Remove(_ context.Context, namespace, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := namespace + "/" + key
	delete(s.objects, path)
	s.removed = append(s.removed, path)

	return nil
}

func (s *memoryStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

type memoryRegistry struct {
	mu        sync.Mutex
	id        media.ID
	renders   map[media.ID]*media.Render
	createErr error
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{
		id:      testRenderID,
		renders: make(map[media.ID]*media.Render),
	}
}

func (r *memoryRegistry) GenerateID() media.ID {
	return r.id
}

func (r *memoryRegistry) CreateRender(_ context.Context, render *media.Render) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.renders[render.ID] = render

	return nil
}

func (r *memoryRegistry) GetRenderByID(_ context.Context, ID media.ID) (*media.Render, error) {
	if len(ID) != 24 {
		return nil, errors.Wrapf(registry.ErrInvalidID, "%s", ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	render, ok := r.renders[ID]
	if !ok {
		return nil, errors.Wrapf(registry.ErrEntityNotFound, "render with ID %s", ID)
	}

	return render, nil
}
