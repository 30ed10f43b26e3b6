package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func historyDoc(userID, location string, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "user_id", Value: userID},
		{Key: "location", Value: location},
		{Key: "location_key", Value: location},
		{Key: "created_at", Value: at},
	}
}

func TestMongoSearchHistoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "travel.search_history"
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		entry := &models.SearchHistory{UserID: "u1", Location: "Paris", LocationKey: "paris"}
		require.NoError(mt, repo.Create(context.Background(), entry))
		assert.False(mt, entry.CreatedAt.IsZero())
	})

	mt.Run("list recent", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			historyDoc("u1", "tokyo", at.Add(time.Minute)),
			historyDoc("u1", "paris", at),
		))

		entries, err := repo.ListRecent(context.Background(), "u1", 10)
		require.NoError(mt, err)
		require.Len(mt, entries, 2)
		assert.Equal(mt, "tokyo", entries[0].Location)
		assert.Equal(mt, "paris", entries[1].LocationKey)
	})

	mt.Run("prune deletes overflow", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
			),
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 2}},
		)

		removed, err := repo.Prune(context.Background(), "u1", 10)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), removed)
	})

	mt.Run("prune with nothing stale skips delete", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		removed, err := repo.Prune(context.Background(), "u1", 10)
		require.NoError(mt, err)
		assert.Zero(mt, removed)
	})

	mt.Run("delete all", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 3}})

		removed, err := repo.DeleteAllByUser(context.Background(), "u1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), removed)
	})

	mt.Run("server error surfaces", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Message: "bad value",
		}))

		_, err := repo.ListRecent(context.Background(), "u1", 10)
		assert.Error(mt, err)
	})
}
