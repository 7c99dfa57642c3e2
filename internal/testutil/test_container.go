//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// shared is the replica-set container every integration test in a package reuses.
var shared struct {
	once      sync.Once
	mu        sync.RWMutex
	container *MongoDBContainer
	err       error
}

// SharedMongo starts the package's replica set on first use and returns it afterwards.
func SharedMongo(ctx context.Context) (*MongoDBContainer, error) {
	shared.once.Do(func() {
		c, err := SetupMongoDB(ctx)
		shared.mu.Lock()
		shared.container, shared.err = c, err
		shared.mu.Unlock()
	})

	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return shared.container, shared.err
}

// SharedMongoURI returns the connection string of the shared replica set.
// It panics when RunWithSharedMongo has not started it.
func SharedMongoURI() string {
	shared.mu.RLock()
	defer shared.mu.RUnlock()

	if shared.container == nil {
		panic("shared MongoDB replica set not started: call RunWithSharedMongo from TestMain")
	}
	return shared.container.URI
}

// RunWithSharedMongo starts the shared replica set, runs the package's tests and terminates it.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongo(context.Background(), m))
//	}
func RunWithSharedMongo(ctx context.Context, m *testing.M) int {
	if _, err := SharedMongo(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "start MongoDB replica set: %v\n", err)
		return 1
	}

	code := m.Run()

	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.container != nil {
		if err := shared.container.Cleanup(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "terminate MongoDB replica set: %v\n", err)
		}
		shared.container = nil
	}
	return code
}
