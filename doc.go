// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ranked Pick API server.

Ranked Pick is a single-election ranked-choice voting service for a party
guest roster: guests rank three other guests, and once the admin closes the
voting window the server tabulates a winner by instant-runoff elimination.

# Starting the Server

The server runs against SQLite by default:

	ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 3320 -d "file:party.db" -admin-token ...

# Configuration

Required settings:

  - ADMIN_TOKEN (-admin-token): token for the admin endpoints

Optional settings:

  - PORT (-p): Server port (default: 3320)
  - DATABASE_URL (-d): connection string (default: file:ranked-pick.db)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the voting engine (window, ballot validation, RCV tabulation)
  - handlers: HTTP request handlers (guests, sessions, voting, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Token generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
