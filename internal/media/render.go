package media

import (
	"time"
)

type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) None() bool {
	return id == ""
}

type Status string

const (
	Pending Status = "pending"
	Active  Status = "active"
)

// Render is an archived result of a single resize invocation
type Render struct {
	ID           ID     `json:"id"`
	OriginalName string `json:"originalName"`
	OriginalSize int    `json:"originalSize"`

	// Source format as reported by the decoder
	SourceExtension Extension `json:"sourceExtension"`

	// Mode of the transformation that produced the render
	Mode     string `json:"mode"`
	Filename string `json:"filename"`

	// Key of the object inside the namespace (S3 bucket)
	Key       string `json:"key"`
	Namespace string `json:"namespace"`

	// Path in storage (namespace/key)
	Path string `json:"path"`

	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Size      int       `json:"size"`
	Quality   int       `json:"quality"`
	Mime      string    `json:"mime"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func ComputeRenderKey(renderID ID, filename string) string {
	return renderID.String() + "/" + filename
}

func ComputeRenderPath(namespace, key string) string {
	return namespace + "/" + key
}
