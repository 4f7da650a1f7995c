// Package repository holds the data-access layer: one repository per
// collection, thin wrappers over the mongo driver. Every method applies its
// own short timeout so a stuck database round-trip cannot pin a request.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup by id (or email) matches nothing.
var ErrNotFound = errors.New("document not found")

const opTimeout = 5 * time.Second

// noObjectID drops the driver-level _id from every read; documents are keyed
// by their application-level id field.
var noObjectID = bson.M{"_id": 0}

// normalizeEmail keeps email matching consistent everywhere an address is
// stored or queried: registration, login and quote lookups all compare the
// lowercased, trimmed form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func findOneByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var doc T
	err := coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(noObjectID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if opts == nil {
		opts = options.Find()
	}
	opts.SetProjection(noObjectID)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := coll.InsertOne(ctx, doc)
	return err
}

func updateOneByID(ctx context.Context, coll *mongo.Collection, id string, set bson.M) error {
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOneByID(ctx context.Context, coll *mongo.Collection, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
