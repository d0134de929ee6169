package lawRepo

import (
	"context"
	"fmt"
	"time"

	"samvidhansetu/database"
	"samvidhansetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLawRepo implements LawRepository using MongoDB.
type MongoLawRepo struct {
	coll *mongo.Collection
}

// NewMongoLawRepo creates a new instance of LawRepository using MongoDB.
func NewMongoLawRepo() LawRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("laws")
	repo := &MongoLawRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create law indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoLawRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every law, ordered by creation time so the list keeps its
// insertion order.
func (r *MongoLawRepo) GetAll(ctx context.Context) ([]models.Law, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve laws: %w", err)
	}
	defer cursor.Close(ctx)

	var laws []models.Law
	for cursor.Next(ctx) {
		var l models.Law
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode law: %w", err)
		}
		laws = append(laws, l)
	}
	return laws, nil
}

// GetByID retrieves a law by its unique ID.
func (r *MongoLawRepo) GetByID(ctx context.Context, id string) (*models.Law, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var law models.Law
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&law); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLawNotFound
		}
		return nil, fmt.Errorf("failed to fetch law with id %s: %w", id, err)
	}
	return &law, nil
}

// Count returns the number of stored laws.
func (r *MongoLawRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count laws: %w", err)
	}
	return n, nil
}
