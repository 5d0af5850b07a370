// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import "github.com/danielhkuo/quickly-survey/models"

// tally counts occurrences of each answer at one question position,
// remembering the order in which distinct answers were first seen
type tally struct {
	counts map[int]int
	order  []int
}

func newTally() *tally {
	return &tally{counts: make(map[int]int)}
}

func (t *tally) add(v int) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

// dominant returns the most frequent value, or nil if nothing was counted.
// Ties go to the value seen first.
func (t *tally) dominant() *int {
	if len(t.order) == 0 {
		return nil
	}

	best := t.order[0]
	for _, v := range t.order[1:] {
		if t.counts[v] > t.counts[best] {
			best = v
		}
	}
	return &best
}

// ComputeDominant returns, for each question index of a topic, the answer
// chosen most often across subs. The result always has questionCount
// elements; positions no submission answered are nil.
func ComputeDominant(subs []models.Submission, topic models.Topic, questionCount int) []*int {
	if questionCount < 0 {
		questionCount = 0
	}

	tallies := make([]*tally, questionCount)
	for i := range tallies {
		tallies[i] = newTally()
	}

	for _, sub := range subs {
		answers := sub.Answers(topic)
		for i, v := range answers {
			if i >= questionCount {
				break
			}
			tallies[i].add(v)
		}
	}

	result := make([]*int, questionCount)
	for i, t := range tallies {
		result[i] = t.dominant()
	}
	return result
}

// ComputeSnapshot runs ComputeDominant for every topic, in topic order
func ComputeSnapshot(subs []models.Submission) models.Snapshot {
	var snapshot models.Snapshot
	for _, topic := range models.Topics {
		snapshot[topic] = ComputeDominant(subs, topic, topic.QuestionCount())
	}
	return snapshot
}
