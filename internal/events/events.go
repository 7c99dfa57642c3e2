// Package events publishes domain events for downstream consumers such as the search layer.
package events

import (
	"context"
	"time"
)

// Routing keys of the events the service emits.
const (
	RoutingKeyPackagePriced  = "package.priced"
	RoutingKeyPackageDeleted = "package.deleted"
)

// DefaultExchange is the topic exchange events are published to.
const DefaultExchange = "catering.packages"

// Publisher sends an event body under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
	Close() error
}

// PackagePriced is emitted whenever a package's total price changes or a package is created.
// Prices are decimal strings with two places.
type PackagePriced struct {
	PackageID      string    `json:"package_id"`
	CatererID      string    `json:"caterer_id"`
	TotalPrice     string    `json:"total_price"`
	PricePerPerson string    `json:"price_per_person"`
	MinimumPeople  int       `json:"minimum_people"`
	Currency       string    `json:"currency"`
	Revision       int64     `json:"revision"`
	CreatedBy      string    `json:"created_by"`
	IsActive       bool      `json:"is_active"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// PackageDeleted is emitted after a package and its add-ons are removed.
type PackageDeleted struct {
	PackageID  string    `json:"package_id"`
	CatererID  string    `json:"caterer_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Noop discards every event. Used when event publishing is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }

func (Noop) Close() error { return nil }
