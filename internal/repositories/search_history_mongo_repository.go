package repositories

import (
	"context"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSearchHistoryRepository implements SearchHistoryRepository for MongoDB
type MongoSearchHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchHistoryRepository creates a new MongoSearchHistoryRepository
func NewMongoSearchHistoryRepository(db *mongo.Database) *MongoSearchHistoryRepository {
	return &MongoSearchHistoryRepository{collection: db.Collection("search_history")}
}

// EnsureIndexes creates the (user_id, created_at) index used by every query
func (r *MongoSearchHistoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func (r *MongoSearchHistoryRepository) Create(ctx context.Context, entry *models.SearchHistory) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	doc := models.SearchHistoryDocument{
		ID:          primitive.NewObjectID(),
		UserID:      entry.UserID,
		Location:    entry.Location,
		LocationKey: entry.LocationKey,
		CreatedAt:   entry.CreatedAt,
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func newestFirst() bson.D {
	return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
}

func (r *MongoSearchHistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error) {
	findOptions := options.Find().SetSort(newestFirst()).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.SearchHistoryDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	entries := make([]models.HistoryEntry, len(docs))
	for i, d := range docs {
		entries[i] = d.ToEntry()
	}
	return entries, nil
}

func (r *MongoSearchHistoryRepository) Prune(ctx context.Context, userID string, keep int) (int64, error) {
	findOptions := options.Find().
		SetSort(newestFirst()).
		SetSkip(int64(keep)).
		SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var stale []models.SearchHistoryDocument
	if err = cursor.All(ctx, &stale); err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}
	ids := make([]primitive.ObjectID, len(stale))
	for i, d := range stale {
		ids[i] = d.ID
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoSearchHistoryRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
