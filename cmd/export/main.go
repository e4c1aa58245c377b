package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Voultapher/heritage-pathfind/internal/config"
	"github.com/Voultapher/heritage-pathfind/internal/domain"
	"github.com/Voultapher/heritage-pathfind/internal/graph"
	"github.com/Voultapher/heritage-pathfind/internal/logging"
	"github.com/Voultapher/heritage-pathfind/internal/repository"
	"github.com/Voultapher/heritage-pathfind/internal/service"
)

func main() {
	output := flag.String("output", "", "Destination file for the person export (default stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "export")

	ctx := context.Background()
	client, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	svc := service.NewQueryService(repository.New(client))
	persons, err := svc.Persons(ctx)
	if err != nil {
		logger.Error("person export failed", "error", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logger.Error("failed to create output file", "error", err, "path", *output)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := writePersons(out, persons); err != nil {
		logger.Error("failed to write export", "error", err)
		os.Exit(1)
	}
	logger.Info("export complete", "persons", len(persons))
}

// writePersons emits one semicolon-delimited row per person, unknown ages as
// an empty field.
func writePersons(w io.Writer, persons []domain.Person) error {
	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString("PersonID;Name;Age\n"); err != nil {
		return err
	}
	for _, person := range persons {
		age := ""
		if person.Age != nil {
			age = strconv.Itoa(*person.Age)
		}
		row := strings.Join([]string{person.ID.String(), person.Name, age}, ";")
		if _, err := buf.WriteString(row + "\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for export")
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
