// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation.

# Tables

  - guest: roster members; is_active gates both voting and candidacy
  - session: guest session tokens
  - voting_status: the singleton voting window row (id = 1)
  - vote: ranked ballots, UNIQUE per voter

# Usage

Call CreateSchema once at startup, then InitVotingStatus to seed the
window row:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil { ... }
	if err := db.InitVotingStatus(conn); err != nil { ... }

Both are idempotent. The DDL is selected per driver: SQLite and PostgreSQL
spell generated id columns differently, everything else is shared. Inserts
read generated ids back with RETURNING, which both drivers support.
*/
package db
