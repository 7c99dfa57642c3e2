// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte) {
	m.Called(ctx, key, value)
}

func (m *MockCache) Invalidate(ctx context.Context, key string) {
	m.Called(ctx, key)
}

func (m *MockCache) Clear(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCache) Stop() {
	m.Called()
}
