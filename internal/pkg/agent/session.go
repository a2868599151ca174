package agent

// session is the ordered, append-only message log owned by a single agent.
// Insertion order is conversational order. It is not safe for concurrent
// use; callers uphold the one-agent-one-caller discipline or add their own
// mutual exclusion around the owning agent.
type session struct {
	messages []Message
}

func (s *session) append(message Message) {
	s.messages = append(s.messages, message)
}

// history returns a defensive copy of the trailing limit records in original
// order. A limit of zero or less returns the full history. Mutating the
// returned slice does not affect the session.
func (s *session) history(limit int) []Message {
	start := 0
	if limit > 0 && limit < len(s.messages) {
		start = len(s.messages) - limit
	}
	records := make([]Message, len(s.messages)-start)
	copy(records, s.messages[start:])
	return records
}

func (s *session) clear() {
	s.messages = nil
}

func (s *session) len() int {
	return len(s.messages)
}
