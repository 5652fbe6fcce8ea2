package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	ListEventsByUser(ctx context.Context, userId primitive.ObjectID) ([]*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
	// FindConflictCandidates returns the user's active events on the exact
	// date string, excluding excludeId when non-zero.
	FindConflictCandidates(ctx context.Context, userId primitive.ObjectID, date string, excludeId primitive.ObjectID) ([]*Event, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	event.BeforeCreate()

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event: %v", err)
	}

	return &event, nil
}

func (mdb *MongodbRepo) ListEventsByUser(ctx context.Context, userId primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"user": userId})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Event, error) {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating event: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) FindConflictCandidates(ctx context.Context, userId primitive.ObjectID, date string, excludeId primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Exact string match on date, active events only. Mirrors the
	// {user, date} index created below.
	filter := bson.M{
		"user":   userId,
		"date":   date,
		"active": true,
	}
	if !excludeId.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeId}
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding conflict candidates: %v", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}

// EnsureEventIndexes creates the user+date index used by conflict scans.
func (mdb *MongodbRepo) EnsureEventIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(DbName, EventColName)
	if err != nil {
		return err
	}
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
