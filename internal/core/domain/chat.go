package domain

// ChatMessage is one exchange in a document conversation. A message is
// either pending (an optimistic local echo awaiting the backend answer)
// or answered. The constructors are the only way to build one, so a
// pending message can never carry a stray answer.
type ChatMessage struct {
	query   string
	answer  string
	pending bool
}

// PendingMessage returns the optimistic echo for a query that has been
// sent but not yet answered.
func PendingMessage(query string) ChatMessage {
	return ChatMessage{query: query, pending: true}
}

// AnsweredMessage returns a confirmed exchange.
func AnsweredMessage(query, answer string) ChatMessage {
	return ChatMessage{query: query, answer: answer}
}

// Query returns the user's question.
func (m ChatMessage) Query() string { return m.query }

// Pending reports whether the message is still awaiting its answer.
func (m ChatMessage) Pending() bool { return m.pending }

// Answer returns the backend answer. ok is false while the message is
// pending.
func (m ChatMessage) Answer() (answer string, ok bool) {
	if m.pending {
		return "", false
	}
	return m.answer, true
}

// ChatHistory is the ordered conversation for one document. It is
// append-only except for ResolvePending, which atomically swaps the
// single pending message for its confirmed counterpart. Insertion order
// is preserved across hydration and appends.
type ChatHistory struct {
	messages []ChatMessage
}

// NewChatHistory builds a history from already-confirmed messages,
// typically the hydration fetch. The slice is copied.
func NewChatHistory(messages []ChatMessage) ChatHistory {
	h := ChatHistory{messages: make([]ChatMessage, len(messages))}
	copy(h.messages, messages)
	return h
}

// Len returns the number of messages.
func (h *ChatHistory) Len() int { return len(h.messages) }

// Messages returns a snapshot of the history in insertion order.
func (h *ChatHistory) Messages() []ChatMessage {
	out := make([]ChatMessage, len(h.messages))
	copy(out, h.messages)
	return out
}

// HasPending reports whether an optimistic message is awaiting an answer.
func (h *ChatHistory) HasPending() bool {
	for _, m := range h.messages {
		if m.Pending() {
			return true
		}
	}
	return false
}

// AppendPending adds the optimistic echo for query at the end. It
// returns ErrSendInFlight if a pending message already exists; the data
// model never holds two.
func (h *ChatHistory) AppendPending(query string) error {
	if h.HasPending() {
		return ErrSendInFlight
	}
	h.messages = append(h.messages, PendingMessage(query))
	return nil
}

// ResolvePending removes the single pending message and appends the
// confirmed message in one step. Observers never see a state with
// neither message present, or with both.
func (h *ChatHistory) ResolvePending(confirmed ChatMessage) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		if !m.Pending() {
			kept = append(kept, m)
		}
	}
	h.messages = append(kept, confirmed)
}
