package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shared CRUD plumbing for the per-entity resource stores. The four portfolio
// resources (projects, skills, testimonials, blogs) address their collections
// identically; only the document type and the $set payload differ.

func findByOwner[T any](ctx context.Context, coll *mongo.Collection, ownerEmail string) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{"userEmail": ownerEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", coll.Name(), err)
	}
	return out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", coll.Name(), err)
	}
	return out, nil
}

// findByID returns notFound when no document matches so each store can map
// to its entity-specific sentinel.
func findByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to get %s document: %w", coll.Name(), err)
	}
	return &doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert %s document: %w", coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return id, nil
}

// setByID performs a full-replace $set of the given fields. Returns the
// matched count; zero means the document vanished between the caller's
// existence check and this update, which callers report as not found.
func setByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("failed to update %s document: %w", coll.Name(), err)
	}
	return res.MatchedCount, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (int64, error) {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s document: %w", coll.Name(), err)
	}
	return res.DeletedCount, nil
}
