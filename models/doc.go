// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitRequest: grupo, tema1 (7), tema2 (7), tema3 (8)

# Response Types

  - SubmitResponse: id, message
  - SummaryResponse: medias
  - ErrorResponse: error, message

# Domain Types

  - Submission: one group's answers and the snapshot stored with it
  - Snapshot: dominant value per question, per topic (nil = no value yet)
  - Topic: Topic1, Topic2, Topic3 with QuestionCount 7, 7, 8

Wire names follow the survey frontend (grupo, tema1..3, medias).
*/
package models
