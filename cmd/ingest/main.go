package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Voultapher/heritage-pathfind/internal/config"
	"github.com/Voultapher/heritage-pathfind/internal/dataset"
	"github.com/Voultapher/heritage-pathfind/internal/graph"
	"github.com/Voultapher/heritage-pathfind/internal/logging"
	"github.com/Voultapher/heritage-pathfind/internal/repository"
	"github.com/Voultapher/heritage-pathfind/internal/service"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to the relationship CSV dataset")
		schemaPath = flag.String("schema", "", "Optional YAML schema mapping for the dataset columns")
		workers    = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: ingest -input <path to csv> [-schema <mapping.yaml>] [-workers <n>]")
		os.Exit(2)
	}

	schema, err := resolveSchema(*schemaPath, cfg.Dataset.SchemaPath)
	if err != nil {
		logger.Error("schema resolution failed", "error", err)
		os.Exit(1)
	}

	svc, err := service.NewAncestryService(schema)
	if err != nil {
		logger.Error("service initialization failed", "error", err)
		os.Exit(1)
	}

	file, err := os.Open(*input)
	if err != nil {
		logger.Error("failed to open dataset", "error", err, "path", *input)
		os.Exit(1)
	}

	ancestryGraph, err := svc.LoadGraph(file)
	file.Close()
	if err != nil {
		logger.Error("failed to load graph", "error", err, "path", *input)
		os.Exit(1)
	}

	persons := ancestryGraph.Persons()
	relationships := ancestryGraph.Relationships()
	if len(persons) == 0 {
		logger.Error("dataset references no persons", "path", *input)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	ingest := service.NewIngestService(repo)
	ingestor := service.NewBulkIngestor(ingest, *workers)

	start := time.Now()
	logger.Info("ingesting persons", "count", len(persons), "workers", *workers, "runId", ingest.RunID())
	if err := ingestor.IngestPersons(ctx, persons); err != nil {
		logger.Error("person ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingesting relationships", "count", len(relationships))
	if err := ingestor.IngestRelationships(ctx, relationships); err != nil {
		logger.Error("relationship ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion complete",
		"duration", time.Since(start).String(),
		"persons", len(persons),
		"relationships", len(relationships),
		"runId", ingest.RunID())
}

func resolveSchema(flagPath, envPath string) (dataset.Schema, error) {
	path := flagPath
	if path == "" {
		path = envPath
	}
	if path == "" {
		return dataset.DefaultSchema(), nil
	}
	return dataset.LoadSchema(path)
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for ingestion")
	}
	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to graph store", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
