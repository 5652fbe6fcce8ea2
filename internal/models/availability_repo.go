package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityRepo interface {
	GetAvailabilityByUser(ctx context.Context, userId primitive.ObjectID) (*Availability, error)
	CreateAvailability(ctx context.Context, availability *Availability) (*Availability, error)
	ReplaceWeeklyHours(ctx context.Context, userId primitive.ObjectID, weeklyHours []DayAvailability) (*Availability, error)
}

func (mdb *MongodbRepo) GetAvailabilityByUser(ctx context.Context, userId primitive.ObjectID) (*Availability, error) {
	col, err := mdb.GetCollection(DbName, AvailabilityColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var availability Availability
	err = col.FindOne(ctx, bson.M{"user": userId}).Decode(&availability)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding availability: %v", err)
	}

	return &availability, nil
}

func (mdb *MongodbRepo) CreateAvailability(ctx context.Context, availability *Availability) (*Availability, error) {
	col, err := mdb.GetCollection(DbName, AvailabilityColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, availability); err != nil {
		return nil, fmt.Errorf("error inserting availability: %v", err)
	}

	return availability, nil
}

// ReplaceWeeklyHours swaps the whole weeklyHours array in one write.
func (mdb *MongodbRepo) ReplaceWeeklyHours(ctx context.Context, userId primitive.ObjectID, weeklyHours []DayAvailability) (*Availability, error) {
	col, err := mdb.GetCollection(DbName, AvailabilityColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"weeklyHours": weeklyHours,
			"updatedAt":   time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Availability
	err = col.FindOneAndUpdate(ctx, bson.M{"user": userId}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating availability: %v", err)
	}

	return &updated, nil
}

// EnsureAvailabilityIndexes enforces the one-record-per-user invariant.
func (mdb *MongodbRepo) EnsureAvailabilityIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(DbName, AvailabilityColName)
	if err != nil {
		return err
	}
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
