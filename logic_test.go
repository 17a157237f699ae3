package main

import "testing"

func TestScoreAnswers(t *testing.T) {
	questions := []Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 0},
		{Text: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 1},
		{Text: "q3", Options: []string{"a", "b", "c", "d"}, Correct: 2},
	}
	tests := []struct {
		name           string
		answers        map[int]int
		wantCorrect    int
		wantIncorrect  int
		wantUnanswered int
	}{
		{
			name:           "all correct",
			answers:        map[int]int{0: 0, 1: 1, 2: 2},
			wantCorrect:    3,
			wantIncorrect:  0,
			wantUnanswered: 0,
		},
		{
			name:           "one right one wrong one skipped",
			answers:        map[int]int{0: 0, 1: 2},
			wantCorrect:    1,
			wantIncorrect:  2,
			wantUnanswered: 1,
		},
		{
			name:           "nothing answered",
			answers:        map[int]int{},
			wantCorrect:    0,
			wantIncorrect:  3,
			wantUnanswered: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, incorrect, unanswered := scoreAnswers(questions, tt.answers)
			if correct != tt.wantCorrect || incorrect != tt.wantIncorrect || unanswered != tt.wantUnanswered {
				t.Errorf("scoreAnswers() = (%d, %d, %d), want (%d, %d, %d)",
					correct, incorrect, unanswered, tt.wantCorrect, tt.wantIncorrect, tt.wantUnanswered)
			}
		})
	}
}

func TestScorePercentRoundsHalfUp(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
		{1, 8, 13},
	}
	for _, tt := range tests {
		if got := scorePercent(tt.correct, tt.total); got != tt.want {
			t.Errorf("scorePercent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{-5, 3, 0},
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{99, 3, 2},
	}
	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
