// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Mint(actor model.Actor) (string, error) {
	args := m.Called(actor)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (model.Actor, error) {
	args := m.Called(tokenString)
	return args.Get(0).(model.Actor), args.Error(1)
}
