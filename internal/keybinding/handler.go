package keybinding

import (
	"time"

	"github.com/Iron-Ham/claudio/internal/logging"
)

// DefaultTimeout is the inter-key timeout used when the host does not
// override it (spec.md §3, SequenceBuffer).
const DefaultTimeout = 1000 * time.Millisecond

// MatchKind tags the three outcomes ProcessKeyEvent can return (spec.md
// §4.4).
type MatchKind int

const (
	NoMatch MatchKind = iota
	Partial
	Matched
)

// String implements fmt.Stringer, used in debug logging.
func (k MatchKind) String() string {
	switch k {
	case Matched:
		return "Matched"
	case Partial:
		return "Partial"
	default:
		return "NoMatch"
	}
}

// MatchOutcome is the result of feeding one key event to the InputHandler.
// Command is only meaningful when Kind == Matched.
type MatchOutcome struct {
	Kind    MatchKind
	Command Command
}

// InputHandler holds the in-flight sequence buffer and drives it against a
// BindingCatalog (spec.md §4.4, C4). It exclusively owns the buffer; the
// catalog it queries is borrowed and never mutated here.
type InputHandler struct {
	catalog    *BindingCatalog
	buffer     KeySequence
	lastAppend time.Time
	timeout    time.Duration
	now        func() time.Time
	logger     *logging.Logger
}

// HandlerOption configures an InputHandler at construction time.
type HandlerOption func(*InputHandler)

// WithTimeout overrides the default 1000ms inter-key timeout.
func WithTimeout(d time.Duration) HandlerOption {
	return func(h *InputHandler) { h.timeout = d }
}

// WithLogger attaches a debug logger; Matched/Partial/NoMatch transitions
// are logged at Debug level and timeout-triggered buffer clears at Warn. A
// nil logger (the default) disables logging.
func WithLogger(l *logging.Logger) HandlerOption {
	return func(h *InputHandler) { h.logger = l }
}

// NewInputHandler constructs an InputHandler bound to catalog.
func NewInputHandler(catalog *BindingCatalog, opts ...HandlerOption) *InputHandler {
	h := &InputHandler{
		catalog: catalog,
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *InputHandler) debugf(msg string, args ...any) {
	if h.logger == nil {
		return
	}
	h.logger.Debug(msg, args...)
}

func (h *InputHandler) warnf(msg string, args ...any) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg, args...)
}

// ProcessKeyEvent appends pattern to the buffer and resolves it against the
// catalog for the given mode (spec.md §4.4, steps 2-3).
func (h *InputHandler) ProcessKeyEvent(pattern KeyPattern, mode EditorMode) MatchOutcome {
	h.buffer = append(h.buffer, pattern)
	h.lastAppend = h.now()

	if cmd, ok := h.catalog.FindMatch(h.buffer, mode); ok {
		h.debugf("key sequence matched", "sequence", h.buffer.String(), "mode", string(mode), "command", cmd.String())
		h.clearSequence()
		return MatchOutcome{Kind: Matched, Command: cmd}
	}
	if h.catalog.IsPartialMatch(h.buffer, mode) {
		h.debugf("key sequence partial", "sequence", h.buffer.String(), "mode", string(mode))
		return MatchOutcome{Kind: Partial}
	}
	h.debugf("key sequence no match", "sequence", h.buffer.String(), "mode", string(mode))
	h.clearSequence()
	return MatchOutcome{Kind: NoMatch}
}

// OnModeChange discards any in-flight sequence. The host calls this after
// every mode transition; calling it twice in a row is observationally
// identical to calling it once (spec.md §8, Mode-change idempotence).
func (h *InputHandler) OnModeChange() {
	h.clearSequence()
}

// CheckTimeout clears the buffer and returns true iff it held a non-empty
// buffer whose last append is at least timeout old. The host calls this
// once per event-loop iteration regardless of whether a key arrived
// (spec.md §4.4).
func (h *InputHandler) CheckTimeout() bool {
	if len(h.buffer) == 0 {
		return false
	}
	if h.now().Sub(h.lastAppend) >= h.timeout {
		h.warnf("sequence buffer timed out", "sequence", h.buffer.String())
		h.clearSequence()
		return true
	}
	return false
}

// Buffer returns the current in-flight sequence. The returned slice must
// not be mutated by the caller.
func (h *InputHandler) Buffer() KeySequence {
	return h.buffer
}

func (h *InputHandler) clearSequence() {
	h.buffer = nil
}
