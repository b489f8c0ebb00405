// Package state holds session-level state shared by the simulation and its
// front ends.
package state

// maxMessages bounds the message log
const maxMessages = 5

// MessageLog is the bounded log of user-facing feedback lines
type MessageLog struct {
	Messages []string
}

// NewMessageLog creates an empty message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the log
func (l *MessageLog) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)

	// Keep only the last maxMessages
	if len(l.Messages) > maxMessages {
		l.Messages = l.Messages[len(l.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *MessageLog) ClearMessages() {
	l.Messages = make([]string, 0)
}

// Last returns the most recent message, or "" if the log is empty
func (l *MessageLog) Last() string {
	if len(l.Messages) == 0 {
		return ""
	}
	return l.Messages[len(l.Messages)-1]
}
