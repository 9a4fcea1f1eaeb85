package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	. "github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	cfg, err := NewConfig()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	publisher, err := NewAMQPPublisher(cfg.AMQPURI, cfg.NotifyExchange, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer publisher.Close()

	dispatcher := NewDispatcher(publisher, sugaredLogger, cfg.NotifyQueueSize, cfg.NotifyWorkers, cfg.NotifyTimeout)
	defer dispatcher.Close()

	clock := SystemClock{}
	queue := NewQueue(repository, dispatcher, clock, sugaredLogger, QueueConfig{
		PrepBuffer:   cfg.PrepBuffer,
		SweepTimeout: cfg.SweepTimeout,
	})
	retention := NewRetention(repository, clock, sugaredLogger, cfg.RetentionWindow)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trigger, err := NewTrigger(ctx, queue, retention, Schedules{
		Sweep:     cfg.SweepSchedule,
		Priority:  cfg.PrioritySchedule,
		Retention: cfg.RetentionSchedule,
	}, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	service := NewService(repository, dispatcher, clock, cfg.JWTSecret, sugaredLogger)
	handlers := NewHandlers(service, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	SetupRoutes(app, handlers)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(cfg.RunAddress)
	})
	g.Go(func() error {
		trigger.Start()
		<-gctx.Done()
		sugaredLogger.Info("Shutting down service...")
		trigger.Stop()
		return app.Shutdown()
	})

	if err = g.Wait(); err != nil {
		sugaredLogger.Error(err)
	}
}
