package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ActorType distinguishes who is calling the service.
type ActorType string

const (
	// ActorCaterer is a caterer managing their own dishes and packages.
	ActorCaterer ActorType = "CATERER"
	// ActorUser is a buyer browsing or composing packages.
	ActorUser ActorType = "USER"
)

// Valid reports whether t is a known actor type.
func (t ActorType) Valid() bool {
	return t == ActorCaterer || t == ActorUser
}

// Actor is the authenticated principal of a request.
type Actor struct {
	ID   primitive.ObjectID `json:"id"`
	Type ActorType          `json:"type"`
}

// IsCaterer reports whether the actor is a caterer.
func (a Actor) IsCaterer() bool { return a.Type == ActorCaterer && !a.ID.IsZero() }

// IsUser reports whether the actor is a buyer.
func (a Actor) IsUser() bool { return a.Type == ActorUser && !a.ID.IsZero() }
