package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harry-maxy/whale-radar-ai/internal/intake"
	"github.com/Harry-maxy/whale-radar-ai/internal/observability"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage/migrations"
	pgstore "github.com/Harry-maxy/whale-radar-ai/internal/storage/postgres"
)

func main() {
	// Parse flags
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (required)")
	feedURL := flag.String("feed-url", "", "WebSocket feed endpoint (e.g., ws://host:port/stream)")
	kafkaBrokers := flag.String("kafka-brokers", "", "Comma-separated Kafka broker list")
	kafkaGroup := flag.String("kafka-group", "whale-radar-intake", "Kafka consumer group ID")
	kafkaTopic := flag.String("kafka-topic", "wallet-interactions", "Kafka topic with intake messages")
	metricsAddr := flag.String("metrics-addr", ":9091", "Address for the Prometheus /metrics endpoint")
	flag.Parse()

	if *postgresDSN == "" {
		fmt.Fprintln(os.Stderr, "Error: --postgres-dsn is required")
		os.Exit(1)
	}
	if *feedURL == "" && *kafkaBrokers == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of --feed-url and --kafka-brokers is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgstore.NewPool(ctx, *postgresDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error running postgres migrations: %v\n", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics("")
	sink := intake.NewSink(pgstore.NewInteractionStore(pool), pgstore.NewTokenMetaStore(pool), metrics)

	// Metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	metricsSrv := &http.Server{Addr: *metricsAddr, Handler: mux}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
		}
	}()

	var feed *intake.FeedClient
	if *feedURL != "" {
		feed, err = intake.NewFeedClient(ctx, *feedURL, sink, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to feed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Consuming feed %s\n", *feedURL)
	}

	var consumer *intake.KafkaConsumer
	if *kafkaBrokers != "" {
		consumer, err = intake.NewKafkaConsumer(*kafkaBrokers, *kafkaGroup, *kafkaTopic, sink)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating kafka consumer: %v\n", err)
			os.Exit(1)
		}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintf(os.Stderr, "Kafka consumer error: %v\n", err)
			}
		}()
		fmt.Printf("Consuming kafka topic %s via %s\n", *kafkaTopic, *kafkaBrokers)
	}

	<-ctx.Done()
	fmt.Println("Shutting down")

	if feed != nil {
		feed.Close()
	}
	if consumer != nil {
		consumer.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	metricsSrv.Shutdown(shutdownCtx)
}
