// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Survey API.

# Handler Types

  - SurveyHandler: submission ingestion and the dominant-value summary
  - HealthHandler: liveness plus a database ping

Handlers are created via constructor functions:

	surveyHandler := handlers.NewSurveyHandler(survey.NewService(st))

# Submitting Answers

	POST /api/respostas → Submit

Body:

	{"grupo": "turma-a", "tema1": [7 ints], "tema2": [7 ints], "tema3": [8 ints]}

Answers must lie between 1 and 10. Responses:

  - 201 with the new submission id
  - 400 for invalid JSON, a missing grupo, a wrong answer count or an
    out-of-range answer
  - 500 when the store fails

# Reading the Summary

	GET /api/medias → GetSummary

Returns the dominant value of every question as stored with the latest
submission:

	{"medias": [[...7], [...7], [...8]]}

Positions nobody has answered are null. Returns 404 before the first
submission.
*/
package handlers
