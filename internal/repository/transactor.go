package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTransactor runs functions inside a MongoDB multi-document transaction.
// Transactions need a replica set; when disabled, fn runs without one.
type MongoTransactor struct {
	client  *mongo.Client
	enabled bool
}

// NewMongoTransactor creates a transactor over the database client.
func NewMongoTransactor(db *MongoDB, enabled bool) *MongoTransactor {
	return &MongoTransactor{client: db.Client, enabled: enabled}
}

// WithTransaction runs fn in a transaction. Calls nested inside an active session join it.
// fn may be retried on transient errors, so it must not have side effects outside the database.
func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled || mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
