package interview

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the session's position in the turn-taking cycle.
type State string

const (
	// StateIdle: created, interview not started yet.
	StateIdle State = "idle"
	// StateAwaitingDelivery: the interviewer is speaking the current
	// question; answers are rejected until delivery is confirmed.
	StateAwaitingDelivery State = "awaiting_question_delivery"
	// StateAwaitingResponse: the respondent may answer the current question.
	StateAwaitingResponse State = "awaiting_response"
	// StateCompleted is terminal.
	StateCompleted State = "completed"
)

// Response records one answered question.
type Response struct {
	QuestionIndex int       `json:"questionIndex"`
	Answer        string    `json:"answer"`
	Timestamp     time.Time `json:"timestamp"`
}

// Session drives one interview. All mutation goes through the transition
// methods; the current question index only moves forward.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	language  string
	questions []string
	index     int
	state     State
	responses []Response

	// incomplete is set when the session was abandoned before the last
	// answer arrived.
	incomplete bool

	now func() time.Time
}

// NewSession creates an idle session over the given question set.
func NewSession(questions []string, language string) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question set", ErrInvalidConfiguration)
	}
	return &Session{
		id:        uuid.New(),
		language:  language,
		questions: questions,
		state:     StateIdle,
		now:       time.Now,
	}, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Language() string { return s.language }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentIndex returns the index of the question being asked or answered.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Total returns the question set length.
func (s *Session) Total() int { return len(s.questions) }

// Responses returns a copy of the recorded answers.
func (s *Session) Responses() []Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Response, len(s.responses))
	copy(out, s.responses)
	return out
}

// Incomplete reports whether the session ended without all answers.
func (s *Session) Incomplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incomplete
}

// Start moves the idle session into question delivery and returns the first
// question for the transport to deliver. Starting twice is a protocol
// violation and leaves the session unchanged.
func (s *Session) Start() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return "", fmt.Errorf("%w: session already started (state %s)", ErrProtocolViolation, s.state)
	}
	s.state = StateAwaitingDelivery
	return s.questions[s.index], nil
}

// QuestionDelivered confirms the interviewer finished speaking the current
// question, opening the floor for the answer.
func (s *Session) QuestionDelivered() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingDelivery {
		return fmt.Errorf("%w: question delivery confirmed in state %s", ErrProtocolViolation, s.state)
	}
	s.state = StateAwaitingResponse
	return nil
}

// SubmitResponse records the answer to the current question. It returns the
// next question to deliver, or done=true when the set is exhausted and the
// session completed. Outside AwaitingResponse the call is rejected and the
// session is unchanged.
func (s *Session) SubmitResponse(answer string) (next string, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingResponse {
		return "", false, fmt.Errorf("%w: response submitted in state %s", ErrProtocolViolation, s.state)
	}
	s.responses = append(s.responses, Response{
		QuestionIndex: s.index,
		Answer:        answer,
		Timestamp:     s.now().UTC(),
	})
	if s.index+1 < len(s.questions) {
		s.index++
		s.state = StateAwaitingDelivery
		return s.questions[s.index], false, nil
	}
	s.state = StateCompleted
	return "", true, nil
}

// Abandon force-completes the session from any state, marking it incomplete
// unless it had already finished. Safe to call repeatedly.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return
	}
	s.state = StateCompleted
	s.incomplete = true
}
