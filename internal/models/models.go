package models

// Chunk is the unit of embedding and retrieval: a bounded slice of
// source text plus the name of the document it came from.
type Chunk struct {
	ID     string
	Text   string
	Source string
}

// ChatMessage is one turn of the conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// QuizQuestion is one validated quiz element. For multiple choice
// questions Options holds exactly four entries; for true/false it holds
// the two canonical ones. Answer is always a member of Options.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"correct_answer"`
	Explanation string   `json:"explanation"`
	Type        string   `json:"type"`
}

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

// Flashcard is a front/back study card. Both sides are non-empty after
// validation.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ChatResponse pairs the generated answer with the context that was fed
// into the prompt, so callers can show sources.
type ChatResponse struct {
	Query   string
	Source  string
	Content string
}
