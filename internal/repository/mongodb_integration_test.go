//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container instead of creating a new one
	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	// Create MongoDB connection using the URI from shared testcontainer
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db)
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Packages)
		assert.NotNil(t, db.Logs)
	})

	t.Run("ping successful", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := db.Client.Ping(pingCtx, nil)
		assert.NoError(t, err)
	})

	t.Run("set logs TTL", func(t *testing.T) {
		err := db.SetLogsTTL(ctx, 30)
		assert.NoError(t, err)
	})

	t.Run("set logs TTL multiple times", func(t *testing.T) {
		// Setting TTL multiple times should not error
		err1 := db.SetLogsTTL(ctx, 30)
		assert.NoError(t, err1)

		err2 := db.SetLogsTTL(ctx, 60)
		// May error if index exists, but that's acceptable
		_ = err2
	})

	t.Run("verify collections", func(t *testing.T) {
		assert.Equal(t, "dishes", db.Dishes.Name())
		assert.Equal(t, "package_items", db.PackageItems.Name())
		assert.Equal(t, "packages", db.Packages.Name())
		assert.Equal(t, "add_ons", db.AddOns.Name())
		assert.Equal(t, "caterers", db.Caterers.Name())
		assert.Equal(t, "audit_logs", db.Logs.Name())
	})

	t.Run("transactor commits and rolls back", func(t *testing.T) {
		tx := NewMongoTransactor(db, true)

		err := tx.WithTransaction(ctx, func(txCtx context.Context) error {
			_, err := db.Occasions.InsertOne(txCtx, map[string]interface{}{"name": "Wedding"})
			return err
		})
		require.NoError(t, err)

		boom := errors.New("boom")
		err = tx.WithTransaction(ctx, func(txCtx context.Context) error {
			if _, err := db.Occasions.InsertOne(txCtx, map[string]interface{}{"name": "Funeral"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		count, err := db.Occasions.CountDocuments(ctx, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
