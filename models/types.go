// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Topic identifies one of the three fixed question groups
type Topic int

const (
	Topic1 Topic = iota
	Topic2
	Topic3
)

// Topics lists every topic in snapshot order
var Topics = []Topic{Topic1, Topic2, Topic3}

// Answer range accepted at ingestion
const (
	MinAnswer = 1
	MaxAnswer = 10
)

// QuestionCount returns how many answers a topic holds (7, 7, 8)
func (t Topic) QuestionCount() int {
	switch t {
	case Topic1, Topic2:
		return 7
	case Topic3:
		return 8
	}
	return 0
}

func (t Topic) String() string {
	switch t {
	case Topic1:
		return "tema1"
	case Topic2:
		return "tema2"
	case Topic3:
		return "tema3"
	}
	return "unknown"
}

// Request types

// SubmitRequest is the body of POST /api/respostas
type SubmitRequest struct {
	Group  string `json:"grupo" validate:"required"`
	Topic1 []int  `json:"tema1" validate:"len=7,dive,min=1,max=10"`
	Topic2 []int  `json:"tema2" validate:"len=7,dive,min=1,max=10"`
	Topic3 []int  `json:"tema3" validate:"len=8,dive,min=1,max=10"`
}

// Response types

type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SummaryResponse struct {
	Dominant Snapshot `json:"medias"`
}

// Domain types

// Snapshot holds the dominant value of every question, one slice per topic.
// A nil element means no submission has answered that position yet.
type Snapshot [3][]*int

// EmptySnapshot is the default snapshot of a record that was never aggregated
func EmptySnapshot() Snapshot {
	return Snapshot{{}, {}, {}}
}

// IsEmpty reports whether every topic slice is empty
func (s Snapshot) IsEmpty() bool {
	for _, topic := range s {
		if len(topic) > 0 {
			return false
		}
	}
	return true
}

// Submission is one group's answers plus the snapshot computed when it was stored
type Submission struct {
	ID          string    `json:"id"`
	Group       string    `json:"grupo"`
	Topic1      []int     `json:"tema1"`
	Topic2      []int     `json:"tema2"`
	Topic3      []int     `json:"tema3"`
	Dominant    Snapshot  `json:"medias"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Answers returns the answer vector for a topic
func (s Submission) Answers(t Topic) []int {
	switch t {
	case Topic1:
		return s.Topic1
	case Topic2:
		return s.Topic2
	case Topic3:
		return s.Topic3
	}
	return nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
