package errors

import (
	"sync"

	"go.uber.org/zap"
)

// Recorder receives a count of handled errors per category. Implemented
// by the monitoring metrics; nil-safe from the handler's side.
type Recorder interface {
	RecordError(category string)
}

// Handler is the single funnel failures are reported through. It
// classifies, logs, and optionally attempts recovery. Handle never
// propagates: logging is best-effort and the handler must not panic.
type Handler struct {
	log      *zap.Logger
	recorder Recorder

	mu         sync.RWMutex
	strategies map[Category]RecoveryStrategy
}

// Option configures a Handler.
type Option func(*Handler)

// WithRecorder wires a metrics recorder into the handler.
func WithRecorder(r Recorder) Option {
	return func(h *Handler) {
		h.recorder = r
	}
}

// NewHandler creates a handler writing to the given zap logger. A nil
// logger falls back to a no-op sink.
func NewHandler(log *zap.Logger, opts ...Option) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		log:        log,
		strategies: make(map[Category]RecoveryStrategy),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle normalizes and logs err. Plain failures are coerced to the
// runtime category with the original message preserved. A nil err is a
// no-op.
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}
	e := AsStructured(err)
	if e == nil {
		e = New(CategoryRuntime, err.Error())
	}
	h.emit(e)
}

// CreateAndHandle constructs a structured error and routes it through
// the same path as Handle.
func (h *Handler) CreateAndHandle(category Category, message string, details map[string]any) {
	h.emit(New(category, message).WithDetails(details))
}

// HandleFrameError reports a failure originating inside a sandboxed
// preview frame. The frame identity always survives into the details so
// the failure can be traced back to a specific embedded widget.
func (h *Handler) HandleFrameError(frameID, message string, details map[string]any) {
	e := New(CategoryRuntime, message).WithDetails(details)
	if cat, ok := detailCategory(details); ok {
		e.Category = cat
	}
	e.WithDetail("frame_id", frameID)
	h.emit(e)
}

// HandleMathAPIError reports a failure from a third-party math
// visualization integration. The API identity (e.g. "desmos") is
// retained in the details.
func (h *Handler) HandleMathAPIError(apiType, message string, details map[string]any) {
	h.emit(New(CategoryMathAPI, message).WithDetails(details).WithDetail("api_type", apiType))
}

func (h *Handler) emit(e *Error) {
	defer func() {
		// The handler is terminal; a panicking sink must not take the
		// caller down with it.
		_ = recover()
	}()

	fields := []zap.Field{
		zap.String("category", e.Category.String()),
		zap.String("message", e.Message),
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("details", e.Details))
	}
	if cause := e.Unwrap(); cause != nil {
		fields = append(fields, zap.NamedError("cause", cause))
	}
	h.log.Error("error handled", fields...)

	if h.recorder != nil {
		h.recorder.RecordError(e.Category.String())
	}
}

func detailCategory(details map[string]any) (Category, bool) {
	if details == nil {
		return "", false
	}
	switch v := details["category"].(type) {
	case Category:
		if v.Valid() {
			return v, true
		}
	case string:
		if c := Category(v); c.Valid() {
			return c, true
		}
	}
	return "", false
}
