package mgoregistry

import (
	"fmt"
	"time"

	"github.com/denismitr/resizefn/internal/media"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type renderRecord struct {
	ID              primitive.ObjectID `bson:"_id"`
	OriginalName    string             `bson:"originalName"`
	OriginalSize    int                `bson:"originalSize"`
	SourceExtension string             `bson:"sourceExtension"`
	Mode            string             `bson:"mode"`
	Filename        string             `bson:"filename"`
	Key             string             `bson:"key"`
	Namespace       string             `bson:"namespace"`
	Path            string             `bson:"path"`
	Width           int                `bson:"width"`
	Height          int                `bson:"height"`
	Size            int                `bson:"size"`
	Quality         int                `bson:"quality"`
	Mime            string             `bson:"mime"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func mapRenderToMongoRecord(render *media.Render) *renderRecord {
	if render.ID.None() {
		panic("how can render ID be empty")
	}

	renderID, err := primitive.ObjectIDFromHex(render.ID.String())
	if err != nil {
		panic(fmt.Sprintf("invalid render ID [%s]", render.ID.String()))
	}

	return &renderRecord{
		ID:              renderID,
		OriginalName:    render.OriginalName,
		OriginalSize:    render.OriginalSize,
		SourceExtension: string(render.SourceExtension),
		Mode:            render.Mode,
		Filename:        render.Filename,
		Key:             render.Key,
		Namespace:       render.Namespace,
		Path:            render.Path,
		Width:           render.Width,
		Height:          render.Height,
		Size:            render.Size,
		Quality:         render.Quality,
		Mime:            render.Mime,
		Status:          string(render.Status),
		CreatedAt:       render.CreatedAt,
	}
}

func mapMongoRecordToRender(record *renderRecord) *media.Render {
	return &media.Render{
		ID:              media.ID(record.ID.Hex()),
		OriginalName:    record.OriginalName,
		OriginalSize:    record.OriginalSize,
		SourceExtension: media.Extension(record.SourceExtension),
		Mode:            record.Mode,
		Filename:        record.Filename,
		Key:             record.Key,
		Namespace:       record.Namespace,
		Path:            record.Path,
		Width:           record.Width,
		Height:          record.Height,
		Size:            record.Size,
		Quality:         record.Quality,
		Mime:            record.Mime,
		Status:          media.Status(record.Status),
		CreatedAt:       record.CreatedAt,
	}
}
