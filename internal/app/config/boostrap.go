package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// StorageClose releases the storage backend client, if it holds one.
	StorageClose func(ctx context.Context) error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.StorageClose != nil {
		err := b.StorageClose(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing storage backend")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// zap returns an error syncing stdout on some platforms, nothing to do about it
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
