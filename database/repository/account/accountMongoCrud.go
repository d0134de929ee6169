// File: database/repository/account/accountMongoCrud.go
package accountRepo

import (
	"context"
	"fmt"
	"time"

	"samvidhansetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// PushNotification prepends a notification so the newest entry comes first,
// and returns the updated account document.
func (r *MongoAccountRepo) PushNotification(ctx context.Context, id, text string) (*models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{
			"notifications": bson.M{
				"$each":     []string{text},
				"$position": 0,
			},
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var account models.Account
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to push notification for account %s: %w", id, err)
	}
	return &account, nil
}
