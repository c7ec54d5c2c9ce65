package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"word-mixer/internal/model"
)

const (
	statusChunkSize  = 10
	statusPreviewLen = 50
)

// StatusReport is the /status answer: a header message and the user listing split into chunks.
type StatusReport struct {
	Total  int
	Header string
	Chunks []string
}

// AdminService implements the password-protected commands.
type AdminService struct {
	password    string
	users       UserDirectory
	broadcaster *Broadcaster
}

func NewAdminService(password string, users UserDirectory, broadcaster *Broadcaster) *AdminService {
	return &AdminService{password: password, users: users, broadcaster: broadcaster}
}

// Authorize checks the admin password.
func (s *AdminService) Authorize(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return ErrAccessDenied
	}
	return nil
}

func (s *AdminService) Status(ctx context.Context) (StatusReport, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return StatusReport{}, err
	}

	var header strings.Builder
	header.WriteString("📊 <b>Статус бота</b>\n\n")
	header.WriteString(fmt.Sprintf("👥 <b>Всего пользователей:</b> %d\n\n", len(users)))
	header.WriteString("<b>Последние сообщения пользователей:</b>\n\n")
	if len(users) == 0 {
		header.WriteString("Пользователей пока нет.")
	}

	lines := make([]string, 0, len(users))
	for _, user := range users {
		lines = append(lines, statusLine(user))
	}

	return StatusReport{
		Total:  len(users),
		Header: header.String(),
		Chunks: chunkLines(lines, statusChunkSize),
	}, nil
}

// Recipients lists everybody a broadcast goes to.
func (s *AdminService) Recipients(ctx context.Context) ([]model.User, error) {
	return s.users.ListAll(ctx)
}

func (s *AdminService) Broadcast(ctx context.Context, users []model.User, text string) BroadcastResult {
	return s.broadcaster.Send(ctx, users, text)
}

func statusLine(user model.User) string {
	msg := "нет сообщений"
	if user.LastMessage != nil && *user.LastMessage != "" {
		msg = *user.LastMessage
	}
	msg = strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(msg)
	return fmt.Sprintf("%s - %s", user.Display(), truncate(msg, statusPreviewLen))
}

func truncate(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	return string(runes[:maxLen]) + "..."
}

func chunkLines(lines []string, size int) []string {
	var chunks []string
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		chunks = append(chunks, strings.Join(lines[start:end], "\n"))
	}
	return chunks
}
