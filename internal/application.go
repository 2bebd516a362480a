package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	redistransport "github.com/rocketscienceinc/connectfour/internal/transport/redis"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
	"github.com/rocketscienceinc/connectfour/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var observers []connectfour.Observer

	if conf.Redis.Enabled {
		redisClient, err := redistransport.Connect(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		publisher := redistransport.NewPublisher(logger, redisClient, conf.Redis.Channel, conf.Redis.Buffer)
		observers = append(observers, publisher)

		go func() {
			if pubErr := publisher.Run(ctx); pubErr != nil {
				log.Error("publisher error", "error", pubErr)
			}
		}()

		log.Info("Publishing snapshots", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Redis.Channel)
	}

	engine := connectfour.New(uuid.New().String())
	session := usecase.NewGameSession(logger, engine, observers...)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "session", engine.ID())
		consoleErrCh <- console.New(logger, session, os.Stdin, os.Stdout).Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
