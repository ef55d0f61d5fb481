package ws

// Inbound event kinds.
const (
	eventStartInterview    = "start-interview"
	eventQuestionDelivered = "question-delivered"
	eventUserResponse      = "user-response"
)

// Outbound event kinds.
const (
	eventInterviewStarted = "interview-started"
	eventAIResponse       = "ai-response"
	eventError            = "error"
)

// inboundEvent is the union of everything a respondent may send. Type
// selects the variant; unused fields stay zero.
type inboundEvent struct {
	Type          string `json:"type"`
	Token         string `json:"token,omitempty"`
	Language      string `json:"language,omitempty"`
	QuestionIndex *int   `json:"questionIndex,omitempty"`
	Answer        string `json:"answer,omitempty"`
}

type interviewStartedEvent struct {
	Type          string `json:"type"`
	SessionID     string `json:"sessionId"`
	Question      string `json:"question"`
	QuestionIndex int    `json:"questionIndex"`
	Total         int    `json:"total"`
}

// aiResponseEvent acknowledges an answer. A nil NextQuestion means the
// interview is complete.
type aiResponseEvent struct {
	Type          string  `json:"type"`
	Feedback      string  `json:"feedback"`
	NextQuestion  *string `json:"nextQuestion"`
	QuestionIndex int     `json:"questionIndex"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
