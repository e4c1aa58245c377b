package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Voultapher/heritage-pathfind/internal/config"
	"github.com/Voultapher/heritage-pathfind/internal/dataset"
	"github.com/Voultapher/heritage-pathfind/internal/domain"
	"github.com/Voultapher/heritage-pathfind/internal/graph"
	"github.com/Voultapher/heritage-pathfind/internal/logging"
	"github.com/Voultapher/heritage-pathfind/internal/render"
	"github.com/Voultapher/heritage-pathfind/internal/repository"
	"github.com/Voultapher/heritage-pathfind/internal/service"
)

func main() {
	var (
		input         = flag.String("input", "", "Path to the relationship CSV dataset")
		schemaPath    = flag.String("schema", "", "Optional YAML schema mapping for the dataset columns")
		ancestorArg   = flag.String("a", "", "Ancestor person id (path start)")
		descendantArg = flag.String("c", "", "Descendant person id (path end)")
		remote        = flag.Bool("remote", false, "Query the ingested graph store instead of loading a CSV")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "pathfind")

	ancestor, errA := parsePersonFlag("a", *ancestorArg)
	descendant, errC := parsePersonFlag("c", *descendantArg)
	if errA != nil || errC != nil || (!*remote && *input == "") {
		for _, err := range []error{errA, errC} {
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		printUsage()
		os.Exit(2)
	}

	var path domain.AncestryPath
	if *remote {
		path, err = remotePath(context.Background(), logger, cfg, ancestor, descendant)
	} else {
		path, err = localPath(logger, cfg, *input, *schemaPath, ancestor, descendant)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNoPath) {
			fmt.Println("No direct or indirect relationship found")
			return
		}
		var unknown *domain.UnknownIdentifierError
		if errors.As(err, &unknown) {
			logger.Error("query endpoint not found", "personId", unknown.ID.String())
			os.Exit(1)
		}
		logger.Error("path query failed", "error", err)
		os.Exit(1)
	}

	if err := render.Write(os.Stdout, path); err != nil {
		logger.Error("failed to write path", "error", err)
		os.Exit(1)
	}
}

// parsePersonFlag parses a person-id flag value. The value is a string so an
// omitted flag is distinguishable from the valid identifier 0.
func parsePersonFlag(name, value string) (domain.PersonID, error) {
	if value == "" {
		return 0, fmt.Errorf("flag -%s is required", name)
	}
	id, err := domain.ParsePersonID(value)
	if err != nil {
		return 0, fmt.Errorf("flag -%s: invalid person id %q", name, value)
	}
	return id, nil
}

func localPath(logger *slog.Logger, cfg config.Config, input, schemaPath string, ancestor, descendant domain.PersonID) (domain.AncestryPath, error) {
	schema, err := resolveSchema(schemaPath, cfg.Dataset.SchemaPath)
	if err != nil {
		return domain.AncestryPath{}, fmt.Errorf("resolve schema: %w", err)
	}

	svc, err := service.NewAncestryService(schema)
	if err != nil {
		return domain.AncestryPath{}, err
	}

	file, err := os.Open(input)
	if err != nil {
		return domain.AncestryPath{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	ancestryGraph, err := svc.LoadGraph(file)
	if err != nil {
		return domain.AncestryPath{}, err
	}
	logger.Debug("graph loaded", "persons", ancestryGraph.NodeCount(), "relationships", ancestryGraph.EdgeCount())

	return svc.Trace(ancestryGraph, ancestor, descendant)
}

func remotePath(ctx context.Context, logger *slog.Logger, cfg config.Config, ancestor, descendant domain.PersonID) (domain.AncestryPath, error) {
	client, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		return domain.AncestryPath{}, err
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	svc := service.NewQueryService(repository.New(client))
	return svc.Trace(ctx, ancestor, descendant)
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
		return nil, fmt.Errorf("GRAPH_URI is required for remote queries")
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

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: pathfind -input <path to csv> -a <ancestor id> -c <descendant id>")
	fmt.Fprintln(os.Stderr, "       pathfind -remote -a <ancestor id> -c <descendant id>")
	fmt.Fprintln(os.Stderr, "Example: pathfind -input path/to/file.csv -a 1 -c 32")
}
