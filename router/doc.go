// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Survey API.

# Route Registration

NewRouter returns the configured http.ServeMux wrapped in the CORS
allow-list:

	handler := router.NewRouter(db, store.NewSQL(db), cfg)

# Endpoints

	GET  /health        - Liveness and database ping
	GET  /metrics       - Prometheus metrics
	POST /api/respostas - Submit a group's answers
	GET  /api/medias    - Latest dominant values
	GET  /              - Banner

Survey routes are wrapped with middleware.WithLogging.
*/
package router
