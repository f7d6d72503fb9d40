package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role — автор сообщения в диалоге с ассистентом.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage — сообщение диалога. После добавления в историю не изменяется.
type ChatMessage struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

// Turn — реплика истории в том виде, в котором она уходит во внешний API.
type Turn struct {
	Role Role
	Text string
}

// NewChatMessage создаёт сообщение с упорядоченным по времени идентификатором (UUIDv7).
func NewChatMessage(role Role, text string, now time.Time) ChatMessage {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return ChatMessage{
		ID:        id.String(),
		Role:      role,
		Text:      text,
		Timestamp: now,
	}
}

// ToTurn отбрасывает служебные поля сообщения.
func (m ChatMessage) ToTurn() Turn {
	return Turn{Role: m.Role, Text: m.Text}
}
