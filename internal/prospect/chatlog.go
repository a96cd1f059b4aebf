package prospect

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog keeps the client-side transcript of an email-improvement chat.
// The backend holds the authoritative history; this log only mirrors
// what the current session has seen.
type ChatLog struct {
	messages []ChatMessage
}

// NewChatLog creates an empty transcript.
func NewChatLog() *ChatLog {
	return &ChatLog{}
}

// AddUser appends the user's turn and returns the stored entry.
func (l *ChatLog) AddUser(input string) ChatMessage {
	msg := ChatMessage{
		ID:        uuid.NewString(),
		Role:      ChatRoleUser,
		Content:   input,
		Timestamp: time.Now().UTC(),
	}
	l.messages = append(l.messages, msg)
	return msg
}

// AddReply appends the assistant's turn. When the reply carries a
// rewritten draft it is attached to the entry.
func (l *ChatLog) AddReply(resp *ChatResponse) ChatMessage {
	msg := ChatMessage{
		ID:           uuid.NewString(),
		Role:         ChatRoleAssistant,
		Content:      resp.AIMessage,
		Timestamp:    time.Now().UTC(),
		ImprovedMail: resp.ImprovedMail,
	}
	if resp.ImprovedMail && resp.MailTitle != nil {
		draft := EmailDraft{MailTitle: *resp.MailTitle}
		if resp.MailBodyPlain != nil {
			draft.MailBodyPlain = *resp.MailBodyPlain
		}
		if resp.MailBodyHTML != nil {
			draft.MailBodyHTML = *resp.MailBodyHTML
		}
		msg.MailData = &draft
	}
	l.messages = append(l.messages, msg)
	return msg
}

// Messages returns the transcript in order.
func (l *ChatLog) Messages() []ChatMessage {
	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// LatestDraft returns the most recent rewritten draft in the transcript,
// or nil when no reply improved the mail.
func (l *ChatLog) LatestDraft() *EmailDraft {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].MailData != nil {
			draft := *l.messages[i].MailData
			return &draft
		}
	}
	return nil
}

// Reset clears the transcript. Pair with Service.ResetChat so the local
// view matches the backend.
func (l *ChatLog) Reset() {
	l.messages = nil
}
