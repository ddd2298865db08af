package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the subset of *tgbotapi.BotAPI used for outbound calls.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Chats maps every audience to its Telegram chat.
type Chats struct {
	Staff      int64
	Public     int64
	Escalation int64
}

type telegramNotifier struct {
	logger *slog.Logger
	api    BotAPI
	chats  Chats
}

func NewTelegramNotifier(logger *slog.Logger, api BotAPI, chats Chats) *telegramNotifier {
	return &telegramNotifier{
		logger: logger.With(slog.String("component", "notifier")),
		api:    api,
		chats:  chats,
	}
}

func (n *telegramNotifier) chat(to entities.Audience) (int64, error) {
	switch to {
	case entities.AudienceStaff:
		return n.chats.Staff, nil
	case entities.AudiencePublic:
		return n.chats.Public, nil
	case entities.AudienceEscalation:
		return n.chats.Escalation, nil
	default:
		return 0, fmt.Errorf("unknown audience %d", to)
	}
}

// Send delivers msg and returns its message id. Markdown that Telegram
// refuses to parse is resent as plain text.
func (n *telegramNotifier) Send(ctx context.Context, to entities.Audience, msg entities.OutboundMessage) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	chatID, err := n.chat(to)
	if err != nil {
		return 0, err
	}

	m := tgbotapi.NewMessage(chatID, msg.Text)
	if msg.Markdown {
		m.ParseMode = tgbotapi.ModeMarkdown
	}
	if len(msg.Keyboard) > 0 {
		m.ReplyMarkup = inlineKeyboard(msg.Keyboard)
	}

	sent, err := n.api.Send(m)
	if err != nil && msg.Markdown && isParseError(err) {
		n.logger.Warn("markdown rejected, sending as plain text", slog.String("audience", to.String()))
		m.ParseMode = ""
		sent, err = n.api.Send(m)
	}
	observe(to, "send", err)
	if err != nil {
		return 0, fmt.Errorf("failed to send to %s: %w", to, err)
	}
	return sent.MessageID, nil
}

func (n *telegramNotifier) SendLocation(ctx context.Context, to entities.Audience, loc entities.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	chatID, err := n.chat(to)
	if err != nil {
		return err
	}

	_, err = n.api.Send(tgbotapi.NewLocation(chatID, loc.Latitude, loc.Longitude))
	observe(to, "location", err)
	if err != nil {
		return fmt.Errorf("failed to send location to %s: %w", to, err)
	}
	return nil
}

// EditKeyboard replaces the inline keyboard of messageID. A nil keyboard
// removes every button.
func (n *telegramNotifier) EditKeyboard(ctx context.Context, to entities.Audience, messageID int, kb entities.Keyboard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	chatID, err := n.chat(to)
	if err != nil {
		return err
	}

	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	if len(kb) > 0 {
		markup = inlineKeyboard(kb)
	}

	_, err = n.api.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup))
	if err != nil && isNotModified(err) {
		err = nil
	}
	observe(to, "edit", err)
	if err != nil {
		return fmt.Errorf("failed to edit keyboard of %d: %w", messageID, err)
	}
	return nil
}

func (n *telegramNotifier) AnswerCallback(ctx context.Context, callbackID, alert string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cb := tgbotapi.NewCallback(callbackID, "")
	if alert != "" {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, alert)
	}
	_, err := n.api.Request(cb)
	observe(entities.AudienceStaff, "answer", err)
	if err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

// Reply answers a staff chat directly. A non-empty menu replaces the reply
// keyboard of the chat.
func (n *telegramNotifier) Reply(ctx context.Context, chatID int64, text string, menu entities.Menu) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := tgbotapi.NewMessage(chatID, text)
	if len(menu) > 0 {
		m.ReplyMarkup = replyKeyboard(menu)
	}
	_, err := n.api.Send(m)
	observe(entities.AudienceStaff, "reply", err)
	if err != nil {
		return fmt.Errorf("failed to reply to %d: %w", chatID, err)
	}
	return nil
}

func inlineKeyboard(kb entities.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Action.Encode()))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func replyKeyboard(menu entities.Menu) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(menu))
	for _, row := range menu {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, text := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(text))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func isParseError(err error) bool {
	return strings.Contains(err.Error(), "can't parse entities")
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
