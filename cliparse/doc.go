// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags take precedence over environment variables, which take
precedence over defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - Port (-p / PORT): server port, default 5000
  - DatabaseURL (-d / DATABASE_URL): connection string, default file:diarisk.db
  - DatabaseType (-t / DATABASE_TYPE): sqlite or postgres, default sqlite
  - ModelURL (-m / MODEL_URL): prediction endpoint URL, required
  - Threshold (-threshold / THRESHOLD): high-risk decision threshold, default 0.502
  - PublicURL (-public-url / PUBLIC_URL): base URL for report links, optional

DriverName maps DatabaseType to the registered database/sql driver
("sqlite" for modernc.org/sqlite, "postgres" for lib/pq).
*/
package cliparse
