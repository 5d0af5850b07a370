// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("POST /api/respostas", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms), and records the duration in the request histogram.

# CORS Middleware

	handler := middleware.CORS(cfg.AllowedOrigins, mux)

Only origins on the allow-list get CORS headers. Preflights from other
origins are answered with 403; requests without an Origin pass untouched.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
