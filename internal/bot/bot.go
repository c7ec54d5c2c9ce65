package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"word-mixer/internal/service"
)

const (
	textGreeting = "Привет! 👋\n\n" +
		"Я бот, который учится на твоих сообщениях. " +
		"Пиши мне что-нибудь, и я буду запоминать слова и отвечать случайными комбинациями. 🧠\n\n" +
		"Попробуй что-нибудь написать!"
	textNotEnoughWords = "Пока у меня мало слов... Напиши ещё что-нибудь! 😅"
	textAccessDenied   = "⛔ Неверный пароль."
	textStatusUsage    = "⚠️ Неверный формат. Используйте: /status [пароль]"
	textSayUsage       = "⚠️ Неверный формат. Используйте: /say [пароль] [сообщение]"
	textNoRecipients   = "Бот еще никто не использовал, отправлять некому."
	textInternalError  = "⚠️ Что-то пошло не так. Попробуй ещё раз позже."
)

// telegramAPI is the part of *tgbotapi.BotAPI the bot relies on.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot routes Telegram updates to the chat and admin services.
type Bot struct {
	api   telegramAPI
	chat  *service.ChatService
	admin *service.AdminService
}

// NewAPI authorizes against Telegram with the given token.
func NewAPI(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)
	return api, nil
}

func New(api telegramAPI, chat *service.ChatService, admin *service.AdminService) *Bot {
	return &Bot{api: api, chat: chat, admin: admin}
}

// Start begins polling updates until ctx is cancelled. Updates are handled one at a time.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		if err := b.handleMessage(ctx, update.Message); err != nil {
			log.Printf("handle message: %v", err)
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || msg.Chat == nil {
		return nil
	}

	if msg.IsCommand() {
		return b.handleCommand(ctx, msg)
	}

	if msg.Text == "" {
		return nil
	}
	return b.handleText(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		log.Printf("[info] command from %d: /start", msg.From.ID)
		return b.handleStart(ctx, msg)
	case "status":
		log.Printf("[info] command from %d: /status", msg.From.ID)
		return b.handleStatus(ctx, msg)
	case "say":
		log.Printf("[info] command from %d: /say", msg.From.ID)
		return b.handleSay(ctx, msg)
	default:
		return nil
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.chat.Greet(ctx, msg.From.ID, msg.From.UserName); err != nil {
		return b.fail(msg.Chat.ID, "greet user", err)
	}
	return b.sendText(msg.Chat.ID, textGreeting)
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) error {
	words, err := b.chat.Learn(ctx, msg.From.ID, msg.From.UserName, msg.Text)
	if err != nil {
		return b.fail(msg.Chat.ID, "learn message", err)
	}

	reply, ok := service.ComposeReply(words)
	if !ok {
		return b.sendText(msg.Chat.ID, textNotEnoughWords)
	}
	return b.sendText(msg.Chat.ID, reply)
}

func (b *Bot) handleStatus(ctx context.Context, msg *tgbotapi.Message) error {
	password, _ := splitArgs(msg.CommandArguments())
	if password == "" {
		return b.sendText(msg.Chat.ID, textStatusUsage)
	}
	if err := b.admin.Authorize(password); err != nil {
		log.Printf("[warn] /status from %d: %v", msg.From.ID, err)
		return b.sendText(msg.Chat.ID, textAccessDenied)
	}

	report, err := b.admin.Status(ctx)
	if err != nil {
		return b.fail(msg.Chat.ID, "build status", err)
	}

	if err := b.sendHTML(msg.Chat.ID, report.Header); err != nil {
		return err
	}
	for _, chunk := range report.Chunks {
		if err := b.sendHTML(msg.Chat.ID, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleSay(ctx context.Context, msg *tgbotapi.Message) error {
	password, text := splitArgs(msg.CommandArguments())
	if password == "" {
		return b.sendText(msg.Chat.ID, textSayUsage)
	}
	if err := b.admin.Authorize(password); err != nil {
		log.Printf("[warn] /say from %d: %v", msg.From.ID, err)
		return b.sendText(msg.Chat.ID, textAccessDenied)
	}
	if text == "" {
		return b.sendText(msg.Chat.ID, textSayUsage)
	}

	users, err := b.admin.Recipients(ctx)
	if err != nil {
		return b.fail(msg.Chat.ID, "list recipients", err)
	}
	if len(users) == 0 {
		return b.sendText(msg.Chat.ID, textNoRecipients)
	}

	if err := b.sendText(msg.Chat.ID, fmt.Sprintf("⏳ Начинаю рассылку. Всего пользователей: %d. Ожидайте...", len(users))); err != nil {
		return err
	}

	res := b.admin.Broadcast(ctx, users, text)
	log.Printf("[info] broadcast finished sent=%d failed=%d", res.Sent, res.Failed)

	return b.sendHTML(msg.Chat.ID, fmt.Sprintf(
		"✅ <b>Рассылка завершена!</b>\n\n👍 Отправлено успешно: %d\n👎 Не удалось отправить: %d",
		res.Sent, res.Failed,
	))
}

// fail tells the user something went wrong and returns err for the polling loop to log.
func (b *Bot) fail(chatID int64, op string, err error) error {
	if sendErr := b.sendText(chatID, textInternalError); sendErr != nil {
		log.Printf("send failure notice to %d: %v", chatID, sendErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (b *Bot) sendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) sendHTML(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// splitArgs separates the first argument from the rest, keeping the rest's inner formatting.
func splitArgs(args string) (first, rest string) {
	args = strings.TrimSpace(args)
	idx := strings.IndexFunc(args, unicode.IsSpace)
	if idx < 0 {
		return args, ""
	}
	return args[:idx], strings.TrimSpace(args[idx:])
}

// Sender delivers broadcast messages through the Telegram API.
type Sender struct {
	api telegramAPI
}

func NewSender(api telegramAPI) *Sender {
	return &Sender{api: api}
}

// SendText sends a plain message. A 403 from Telegram (bot blocked, user deactivated)
// is reported as service.ErrRecipientUnreachable.
func (s *Sender) SendText(_ context.Context, chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	if err == nil {
		return nil
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
		return fmt.Errorf("%w: %s", service.ErrRecipientUnreachable, apiErr.Message)
	}
	return fmt.Errorf("send to %d: %w", chatID, err)
}
