package main

// --- Quizzes ---

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Owner string

const (
	OwnerBuiltin Owner = "builtin"
	OwnerUser    Owner = "user"
)

const defaultDurationMinutes = 30

type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"` // minutes
	Questions   []Question `json:"questions"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	Owner       Owner      `json:"owner"`
}

// Builtin quizzes ship with the app and are never deletable.
func (q Quiz) IsBuiltin() bool {
	return q.Owner == OwnerBuiltin
}

// --- Attempt result ---

// Result is the immutable outcome of one submitted attempt.
// Unanswered questions count toward Incorrect and are also reported
// separately via Unanswered.
type Result struct {
	QuizID          string      `json:"quizId"`
	Title           string      `json:"title"`
	Total           int         `json:"total"`
	Correct         int         `json:"correct"`
	Incorrect       int         `json:"incorrect"`
	Unanswered      int         `json:"unanswered"`
	Flagged         int         `json:"flagged"`
	Answers         map[int]int `json:"answers"`
	TimeUsedSeconds int         `json:"timeUsedSeconds"`
}

// --- Notes & tasks ---

type Note struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Background string `json:"bgColor"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	Completed   bool     `json:"completed"`
}

// --- Users ---

type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash
}

// UserPublic is the user shape returned to clients (no credentials).
type UserPublic struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) ToPublic() UserPublic {
	return UserPublic{Username: u.Username, Email: u.Email}
}
