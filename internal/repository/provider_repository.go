package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"szepseg-katalogus/internal/domain"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error)
	GetAll(ctx context.Context) ([]domain.Provider, error)
	GetApproved(ctx context.Context) ([]domain.Provider, error)
	Save(ctx context.Context, provider *domain.Provider) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type providerRepository struct {
	collection *mongo.Collection
}

func NewProviderRepository(db *mongo.Database) ProviderRepository {
	return &providerRepository{collection: db.Collection("providers")}
}

func (r *providerRepository) Create(ctx context.Context, provider *domain.Provider) error {
	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if provider.Media.Images == nil {
		provider.Media.Images = []domain.MediaItem{}
	}
	if provider.Media.Videos == nil {
		provider.Media.Videos = []domain.MediaItem{}
	}

	result, err := r.collection.InsertOne(ctx, provider)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		provider.ID = id
	}
	return nil
}

func (r *providerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error) {
	var provider domain.Provider
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) GetAll(ctx context.Context) ([]domain.Provider, error) {
	return r.find(ctx, bson.M{})
}

func (r *providerRepository) GetApproved(ctx context.Context) ([]domain.Provider, error) {
	return r.find(ctx, bson.M{"approved": true})
}

func (r *providerRepository) find(ctx context.Context, filter bson.M) ([]domain.Provider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	providers := []domain.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) Save(ctx context.Context, provider *domain.Provider) error {
	provider.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": provider.ID}, provider)
	return err
}

func (r *providerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
