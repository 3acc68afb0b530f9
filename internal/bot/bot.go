// Package bot exposes the task list over a Telegram chat.
package bot

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/CalistaIo/ip/internal/config"
	"github.com/CalistaIo/ip/internal/service"
	"github.com/CalistaIo/ip/internal/ui"
)

const (
	exitText = "bye"

	helpText = "Commands:\n" +
		"list\n" +
		"todo <description>\n" +
		"deadline <description> /by <YYYY-MM-DD [HHMM]>\n" +
		"event <description> /at <YYYY-MM-DD [HHMM]>\n" +
		"done <n>\n" +
		"delete <n> [<n>...] | delete all\n" +
		"find <keyword>"
)

// Bot forwards chat messages to the task service and sends back the replies.
type Bot struct {
	api         *tgbotapi.BotAPI
	taskSvc     *service.TaskService
	reminderSvc *service.ReminderService

	// ownerChat is the only chat served when non-zero. Otherwise the last
	// chat that wrote receives reminders.
	ownerChat int64
	lastChat  int64
	mu        sync.Mutex
}

func New(cfg config.Config, taskSvc *service.TaskService, reminderSvc *service.ReminderService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:         api,
		taskSvc:     taskSvc,
		reminderSvc: reminderSvc,
		ownerChat:   cfg.TelegramChatID,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
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
		msg := update.Message
		if msg == nil || msg.Chat == nil || !msg.Chat.IsPrivate() {
			continue
		}
		if !b.accepts(msg.Chat.ID) {
			log.Printf("[info] ignoring chat %d", msg.Chat.ID)
			continue
		}
		if err := b.handleMessage(ctx, msg); err != nil {
			log.Printf("handle message: %v", err)
		}
	}

	return ctx.Err()
}

func (b *Bot) accepts(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ownerChat != 0 && chatID != b.ownerChat {
		return false
	}
	b.lastChat = chatID
	return true
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s", msg.Chat.ID, msg.Command())
		switch msg.Command() {
		case "start":
			return b.sendText(msg.Chat.ID, ui.Welcome())
		case "help":
			return b.sendText(msg.Chat.ID, helpText)
		case "remind":
			return b.sendText(msg.Chat.ID, b.reminderSvc.Summary())
		default:
			return b.sendText(msg.Chat.ID, "Unknown command. Send /help for the list of commands.")
		}
	}
	return b.sendText(msg.Chat.ID, b.reply(ctx, msg.Text))
}

// reply executes one line the same way the console does. "bye" only says
// goodbye; the bot keeps serving.
func (b *Bot) reply(ctx context.Context, text string) string {
	line := strings.TrimRight(text, "\r\n")
	if line == exitText {
		return ui.Farewell()
	}
	return b.taskSvc.Respond(ctx, line)
}

// SendReminder sends the pending-task summary to the served chat, if any.
func (b *Bot) SendReminder(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	chatID := b.reminderChat()
	if chatID == 0 {
		log.Println("[info] no chat to remind yet")
		return nil
	}
	return b.sendText(chatID, b.reminderSvc.Summary())
}

func (b *Bot) reminderChat() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ownerChat != 0 {
		return b.ownerChat
	}
	return b.lastChat
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, "<pre>"+escape(text)+"</pre>")
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func escape(s string) string {
	return html.EscapeString(s)
}
