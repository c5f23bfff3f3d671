// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags win over environment variables:

	-p / PORT                 server port (default 3320)
	-d / DATABASE_URL         database connection string
	-t / DATABASE_TYPE        "sqlite" (default) or "postgres"
	-admin-token / ADMIN_TOKEN  admin API token (required)

With the sqlite type the database URL defaults to file:ranked-pick.db; a
postgres deployment must supply its connection string explicitly.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
