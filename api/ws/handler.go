package ws

import (
	"errors"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avikamggh/ai-interviewer/pkg/interview"
	"github.com/avikamggh/ai-interviewer/pkg/resume"
	"github.com/avikamggh/ai-interviewer/pkg/security/token"
)

// eventWriter is the slice of the websocket connection the event logic
// needs; tests substitute a recorder.
type eventWriter interface {
	WriteJSON(v any) error
}

// Handler drives interview sessions over websocket connections. Each
// connection gets its own identity and a single reader goroutine, so events
// for one session are processed strictly in arrival order.
type Handler struct {
	registry *interview.Registry
	store    *resume.Store
	tokens   *token.Manager
	acks     *interview.AckPicker
	log      *zap.Logger
}

func NewHandler(registry *interview.Registry, store *resume.Store, tokens *token.Manager, acks *interview.AckPicker, log *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		store:    store,
		tokens:   tokens,
		acks:     acks,
		log:      log,
	}
}

// Serve is the per-connection loop. The deferred registry close abandons the
// session on disconnect; after a clean completion it is a no-op.
func (h *Handler) Serve(c *websocket.Conn) {
	connID := uuid.NewString()
	log := h.log.With(zap.String("connId", connID))
	log.Info("connection opened")

	defer func() {
		h.registry.Close(connID)
		log.Info("connection closed")
	}()

	for {
		var ev inboundEvent
		if err := c.ReadJSON(&ev); err != nil {
			return
		}
		h.dispatch(connID, c, ev, log)
	}
}

func (h *Handler) dispatch(connID string, w eventWriter, ev inboundEvent, log *zap.Logger) {
	switch ev.Type {
	case eventStartInterview:
		h.startInterview(connID, w, ev, log)
	case eventQuestionDelivered:
		h.questionDelivered(connID, w, log)
	case eventUserResponse:
		h.userResponse(connID, w, ev, log)
	default:
		h.sendError(w, "unknown event type: "+ev.Type, log)
	}
}

func (h *Handler) startInterview(connID string, w eventWriter, ev inboundEvent, log *zap.Logger) {
	analysisID, err := h.tokens.Verify(ev.Token)
	if err != nil {
		h.sendError(w, "invalid interview token", log)
		return
	}
	rec, ok := h.store.Get(analysisID)
	if !ok {
		h.sendError(w, "interview expired, upload the resume again", log)
		return
	}
	qs, ok := rec.Questions[ev.Language]
	if !ok {
		h.sendError(w, "unsupported language: "+ev.Language, log)
		return
	}

	sess, err := h.registry.Open(connID, qs, ev.Language)
	if err != nil {
		h.sendError(w, err.Error(), log)
		return
	}
	first, err := sess.Start()
	if err != nil {
		// Freshly opened sessions are idle; reaching this is a bug.
		h.registry.Close(connID)
		h.sendError(w, err.Error(), log)
		return
	}

	log.Info("interview started",
		zap.String("sessionId", sess.ID().String()),
		zap.String("language", ev.Language),
		zap.Int("questions", sess.Total()),
	)
	h.send(w, interviewStartedEvent{
		Type:          eventInterviewStarted,
		SessionID:     sess.ID().String(),
		Question:      first,
		QuestionIndex: 0,
		Total:         sess.Total(),
	}, log)
}

func (h *Handler) questionDelivered(connID string, w eventWriter, log *zap.Logger) {
	sess, err := h.registry.Get(connID)
	if err != nil {
		h.sendError(w, err.Error(), log)
		return
	}
	if err := sess.QuestionDelivered(); err != nil {
		h.logViolation(err, sess, log)
		h.sendError(w, err.Error(), log)
	}
}

func (h *Handler) userResponse(connID string, w eventWriter, ev inboundEvent, log *zap.Logger) {
	sess, err := h.registry.Get(connID)
	if err != nil {
		h.sendError(w, err.Error(), log)
		return
	}

	answered := sess.CurrentIndex()
	if ev.QuestionIndex != nil && *ev.QuestionIndex != answered {
		h.sendError(w, "response does not match the current question", log)
		return
	}

	next, done, err := sess.SubmitResponse(ev.Answer)
	if err != nil {
		h.logViolation(err, sess, log)
		h.sendError(w, err.Error(), log)
		return
	}

	resp := aiResponseEvent{
		Type:          eventAIResponse,
		Feedback:      h.acks.Pick(sess.Language()),
		QuestionIndex: answered,
	}
	if !done {
		resp.NextQuestion = &next
	}
	h.send(w, resp, log)

	if done {
		log.Info("interview completed",
			zap.String("sessionId", sess.ID().String()),
			zap.Int("responses", len(sess.Responses())),
		)
		h.registry.Close(connID)
	}
}

func (h *Handler) logViolation(err error, sess *interview.Session, log *zap.Logger) {
	if errors.Is(err, interview.ErrProtocolViolation) {
		log.Warn("protocol violation",
			zap.String("sessionId", sess.ID().String()),
			zap.String("state", string(sess.State())),
			zap.Error(err),
		)
	}
}

func (h *Handler) send(w eventWriter, v any, log *zap.Logger) {
	if err := w.WriteJSON(v); err != nil {
		log.Warn("write event", zap.Error(err))
	}
}

func (h *Handler) sendError(w eventWriter, message string, log *zap.Logger) {
	h.send(w, errorEvent{Type: eventError, Message: message}, log)
}
