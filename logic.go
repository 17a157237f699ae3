package main

import "math"

// scoreAnswers tallies one attempt against a quiz. An unanswered
// question counts as incorrect and is also reported separately.
func scoreAnswers(questions []Question, answers map[int]int) (correct, incorrect, unanswered int) {
	for i, q := range questions {
		selected, answered := answers[i]
		if !answered {
			unanswered++
			incorrect++
			continue
		}
		if selected == q.Correct {
			correct++
		} else {
			incorrect++
		}
	}
	return correct, incorrect, unanswered
}

// scorePercent rounds half up, e.g. 1/3 -> 33, 2/3 -> 67.
func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100.0 / float64(total)))
}

// clampIndex keeps a question pointer inside [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
