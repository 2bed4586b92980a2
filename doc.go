// Copyright (c) 2026 Jakes Otieno.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the kura API server.

kura is an informal civic polling service: anonymous visitors pick a
president, their governor, and their MP, and live aggregated tallies are
served per county, per constituency, and nationally. Sessions are opaque
client-held strings; no accounts, no personal data.

# Starting the Server

The server reads configuration from environment variables or CLI flags:

	DATABASE_URL=file:kura.db go run main.go

Or with flags:

	go run main.go -p 3047 -d "postgres://..." -t postgres -seed ./data

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres URL or sqlite path)

Optional settings:

  - PORT (-p): server port (default: 3047)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SEED_DIR (-seed): directory with mp_data.json / candidates.json

A .env file in the working directory is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (collect, results, counties, session)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - identity: Session ID minting, name slugification
  - db: Schema creation
  - seed: Static county/candidate reference data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
