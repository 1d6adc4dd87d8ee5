package mgoregistry

import (
	"context"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/denismitr/resizefn/internal/registry"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	DB                string
	RendersCollection string
}

type MongoRegistry struct {
	client  *mongo.Client
	db      *mongo.Database
	renders *mongo.Collection
}

func New(client *mongo.Client, cfg Config) *MongoRegistry {
	r := MongoRegistry{
		client: client,
		db:     client.Database(cfg.DB),
	}

	r.renders = r.db.Collection(cfg.RendersCollection)

	return &r
}

func (r *MongoRegistry) GenerateID() media.ID {
	return media.ID(primitive.NewObjectID().Hex())
}

func (r *MongoRegistry) Migrate(ctx context.Context) error {
	_, err := r.renders.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.M{"key": 1},
			Options: options.Index().SetUnique(true),
		},
	)

	if err != nil {
		return errors.Wrap(err, "could not create index on renders collection")
	}

	return nil
}

func (r *MongoRegistry) CreateRender(ctx context.Context, render *media.Render) error {
	if _, err := primitive.ObjectIDFromHex(render.ID.String()); err != nil {
		return errors.Wrapf(registry.ErrInvalidID, "%s", render.ID)
	}

	record := mapRenderToMongoRecord(render)

	if _, err := r.renders.InsertOne(ctx, record); err != nil {
		return errors.Wrapf(registry.ErrRegistryWriteFailed, "could not create render %s: %v", render.ID, err)
	}

	return nil
}

func (r *MongoRegistry) GetRenderByID(ctx context.Context, ID media.ID) (*media.Render, error) {
	renderID, err := primitive.ObjectIDFromHex(ID.String())
	if err != nil {
		return nil, errors.Wrapf(registry.ErrInvalidID, "%s", ID)
	}

	var record renderRecord
	if err := r.renders.FindOne(ctx, bson.M{"_id": renderID}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrapf(registry.ErrEntityNotFound, "render with ID %s", ID)
		}

		return nil, errors.Wrapf(registry.ErrRegistryReadFailed, "could not fetch render %s: %v", ID, err)
	}

	return mapMongoRecordToRender(&record), nil
}
