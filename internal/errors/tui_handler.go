package errors

import (
	"sync"
	"time"
)

// TUIHandler holds the message shown on the status line of the viewer.
// A new message replaces the previous one.
type TUIHandler struct {
	mu      sync.RWMutex
	latest  Message
	hasMsg  bool
	onError func(msg Message)
	now     func() time.Time
}

var _ ErrorHandler = (*TUIHandler)(nil)

type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// Expired reports whether the message is older than ttl at now.
// A non-positive ttl never expires.
func (m Message) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(m.Timestamp) >= ttl
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

func NewTUIHandler(onError func(msg Message)) *TUIHandler {
	return &TUIHandler{
		onError: onError,
		now:     time.Now,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: h.now(),
	}
	h.latest = message
	h.hasMsg = true
	cb := h.onError
	h.mu.Unlock()

	if cb != nil {
		cb(message)
	}
}

// Latest returns the most recent message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasMsg
}

// Current returns the latest message unless it has expired.
func (h *TUIHandler) Current(ttl time.Duration) (Message, bool) {
	msg, ok := h.Latest()
	if !ok || msg.Expired(h.now(), ttl) {
		return Message{}, false
	}
	return msg, true
}

// Clear removes the current message.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = Message{}
	h.hasMsg = false
}
