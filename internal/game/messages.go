package game

import "github.com/babysitterd/chasm/internal/entity"

// Message is one entry of the session narrative log.
type Message struct {
	Text  string       `json:"text"`
	Color entity.Color `json:"color"`
}

// MessageLog is the ordered, append-only narrative log. Renderers consume
// it newest-first; the simulation only ever appends.
type MessageLog struct {
	Entries []Message `json:"entries"`
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Add appends a message with its color tag.
func (l *MessageLog) Add(text string, color entity.Color) {
	l.Entries = append(l.Entries, Message{Text: text, Color: color})
}

// Len returns the number of entries.
func (l *MessageLog) Len() int {
	return len(l.Entries)
}

// Newest returns up to n messages, most recent first.
func (l *MessageLog) Newest(n int) []Message {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	out := make([]Message, 0, n)
	for i := len(l.Entries) - 1; i >= len(l.Entries)-n; i-- {
		out = append(out, l.Entries[i])
	}
	return out
}
