package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/events"
)

// InitializePublisher connects the price event publisher.
// A broker that cannot be reached at startup disables publishing rather than failing the service.
func InitializePublisher(cfg config.EventsConfig) events.Publisher {
	if !cfg.Enabled {
		return events.Noop{}
	}

	publisher, err := events.NewAMQPPublisher(events.AMQPConfig{
		URL:      cfg.AMQPURL,
		Exchange: cfg.Exchange,
	})
	if err != nil {
		log.Warn().Err(err).Msg("AMQP broker unavailable - price events disabled")
		return events.Noop{}
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("Publishing package events")
	return publisher
}
