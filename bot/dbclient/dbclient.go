package dbclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DbClient struct {
	Departments *DepartmentStore
	Threads     *ThreadStore

	client *mongo.Client
}

var Client *DbClient

func Connect(ctx context.Context, uri, database string) error {
	connectCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return errors.Wrap(err, "failed to connect to mongo")
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "failed to ping mongo")
	}

	db := client.Database(database)

	Client = &DbClient{
		Departments: newDepartmentStore(db.Collection("config")),
		Threads:     newThreadStore(db.Collection("threads")),
		client:      client,
	}

	return nil
}

func (c *DbClient) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
