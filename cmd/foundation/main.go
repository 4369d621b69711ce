// foundation is a diagnostic CLI for the Foundation platform: it resolves
// the layered configuration, fetches a repository's connection descriptor,
// and optionally pings the target database.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	foundation "github.com/cogscale/foundation-go"
	"github.com/cogscale/foundation-go/config"
	"github.com/cogscale/foundation-go/logger"
	"github.com/cogscale/foundation-go/repository"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var apiRoot, apiKey, repositoryID string
	var ping, insecureTLS bool
	var timeout time.Duration

	flag.StringVar(&apiRoot, "api-root", "", "Foundation API root (overrides files and env)")
	flag.StringVar(&apiKey, "api-key", "", "Foundation API key (overrides files and env)")
	flag.StringVar(&repositoryID, "repository", "", "Repository ID to fetch the connection for")
	flag.BoolVar(&ping, "ping", false, "Open the database client and ping it")
	flag.BoolVar(&insecureTLS, "insecure-tls", false, "Skip certificate verification on TLS database connections")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall timeout (e.g., 30s, 1m)")
	flag.Parse()

	log := logger.New("foundation-cli")

	fnd, err := foundation.New(config.Overrides{APIRoot: apiRoot, APIKey: apiKey}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if repositoryID == "" {
		log.Fatal().Msg("-repository is required")
	}

	var repoOpts []repository.Option
	if insecureTLS {
		repoOpts = append(repoOpts, repository.WithInsecureTLS())
	}

	repo, err := fnd.Repository(repoOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repository client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := repo.GetConnection(ctx, repositoryID)
	if err != nil {
		log.Fatal().Err(err).Msg("error fetching connection descriptor")
	}

	log.Info().
		Str("host", conn.Server.Host).
		Int("port", conn.Server.Port).
		Str("database", conn.Database).
		Bool("ssl", conn.SSL()).
		Bool("credentials", conn.HasCredentials()).
		Msg("connection descriptor")

	if !ping {
		return
	}

	client, err := repo.GetClient(ctx, repositoryID)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database client")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting database client")
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("database ping failed")
	}

	log.Info().Str("database", conn.Database).Msg("database ping ok")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
