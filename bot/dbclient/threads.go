package dbclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Thread is an open modmail conversation: one ticket channel per recipient.
type Thread struct {
	UserId    uint64    `bson:"user_id"`
	ChannelId uint64    `bson:"channel_id"`
	Open      bool      `bson:"open"`
	OpenedAt  time.Time `bson:"opened_at"`
}

type ThreadStore struct {
	collection *mongo.Collection
}

func newThreadStore(collection *mongo.Collection) *ThreadStore {
	return &ThreadStore{
		collection: collection,
	}
}

// FindByRecipient returns the recipient's open thread, if any.
func (s *ThreadStore) FindByRecipient(ctx context.Context, userId uint64) (Thread, bool, error) {
	var thread Thread
	err := s.collection.FindOne(ctx, bson.M{"user_id": userId, "open": true}).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Thread{}, false, nil
		}

		return Thread{}, false, err
	}

	return thread, true, nil
}

func (s *ThreadStore) Create(ctx context.Context, thread Thread) error {
	_, err := s.collection.InsertOne(ctx, thread)
	return err
}
