// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

package repository

import (
	"context"
	"crypto/tls"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cogscale/foundation-go/models"
)

// GetClient fetches the connection descriptor for repositoryID and opens a
// MongoDB client from it. When the descriptor's options request ssl the
// client connects over TLS; certificate verification is skipped only if the
// repository was constructed with [WithInsecureTLS].
//
// The caller owns the returned client and is responsible for disconnecting
// it.
func (r *Repository) GetClient(ctx context.Context, repositoryID string) (*mongo.Client, error) {
	conn, err := r.GetConnection(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	return r.createClient(ctx, conn)
}

// GetDatabase fetches the connection descriptor for repositoryID, opens a
// MongoDB client, and returns the handle bound to the descriptor's database.
func (r *Repository) GetDatabase(ctx context.Context, repositoryID string) (*mongo.Database, error) {
	conn, err := r.GetConnection(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	client, err := r.createClient(ctx, conn)
	if err != nil {
		return nil, err
	}

	return client.Database(conn.Database), nil
}

func (r *Repository) createClient(ctx context.Context, conn models.ConnectionDescriptor) (*mongo.Client, error) {
	clientOpts := options.Client().ApplyURI(BuildURI(conn))

	if conn.SSL() {
		clientOpts.SetTLSConfig(&tls.Config{
			InsecureSkipVerify: r.insecureTLS,
		})
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to repository database: %w", err)
	}

	return client, nil
}

// BuildURI renders a descriptor as a MongoDB connection string of the form
// mongodb://[user:pass@]host:port/database. Credentials are embedded only
// when both username and password are present.
func BuildURI(conn models.ConnectionDescriptor) string {
	if conn.HasCredentials() {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s",
			conn.Username, conn.Password, conn.Server.Host, conn.Server.Port, conn.Database)
	}

	return fmt.Sprintf("mongodb://%s:%d/%s",
		conn.Server.Host, conn.Server.Port, conn.Database)
}
