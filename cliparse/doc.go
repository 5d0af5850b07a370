// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Precedence is CLI flag, then process environment, then a .env file in the
working directory, then the built-in default.

# CLI Flags and Environment Variables

	-p           PORT             Server port (5051)
	-d           DATABASE_URL     Database URL
	-t           DATABASE_TYPE    sqlite | postgres | memory (sqlite)
	-origins     ALLOWED_ORIGINS  Comma-separated CORS allow-list
	-log-level   LOG_LEVEL        debug | info | warn | error (info)
	-log-format  LOG_FORMAT       text | json (text)

# Validation

ParseFlags returns an error when PORT is not a number, the database type is
unknown, or no database URL is given for sqlite/postgres.
*/
package cliparse
