// File: database/repository/law/lawMongoCrud.go
package lawRepo

import (
	"context"
	"fmt"
	"time"

	"samvidhansetu/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new law document, assigning its id and timestamps.
func (r *MongoLawRepo) Create(ctx context.Context, law *models.Law) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	law.ID = "law-" + uuid.New().String()
	law.CreatedAt = now
	law.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, law); err != nil {
		return fmt.Errorf("failed to create law: %w", err)
	}
	return nil
}

// Update replaces the stored record's fields and refreshes UpdatedAt. The id
// and CreatedAt are never touched.
func (r *MongoLawRepo) Update(ctx context.Context, law *models.Law) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	law.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"category":              law.Category,
		"title":                 law.Title,
		"articleOrSection":      law.ArticleOrSection,
		"hindiTitle":            law.HindiTitle,
		"hindiArticleOrSection": law.HindiArticleOrSection,
		"explanation":           law.Explanation,
		"hindiExplanation":      law.HindiExplanation,
		"keywords":              law.Keywords,
		"updatedAt":             law.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": law.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update law with id %s: %w", law.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrLawNotFound
	}
	return nil
}

// Delete removes a law document by its ID.
func (r *MongoLawRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete law with id %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}
