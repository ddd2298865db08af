package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/config"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateSource is the long polling side of *tgbotapi.BotAPI.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Classifier interface {
	Classify(msg entities.InboundMessage) (entities.Event, bool)
}

type OrderProcessor interface {
	HandleEvent(ctx context.Context, ev entities.Event) error
	HandleAction(ctx context.Context, press entities.ButtonPress) error
	IsOpen(orderID string) bool
}

type CallbackAnswerer interface {
	AnswerCallback(ctx context.Context, callbackID, alert string) error
}

// Debouncer reports false for a key that was seen within its ttl.
type Debouncer interface {
	Add(key string, value struct{}) bool
}

type AdminFlow interface {
	Handle(ctx context.Context, chatID, userID int64, text string)
}

type telegramHandler struct {
	logger      *slog.Logger
	source      UpdateSource
	pollTimeout time.Duration
	channelID   int64
	cashierID   int64

	classifier Classifier
	orders     OrderProcessor
	answerer   CallbackAnswerer
	debounce   Debouncer
	admin      AdminFlow
}

func NewTelegramHandler(
	logger *slog.Logger,
	cfg config.Telegram,
	source UpdateSource,
	classifier Classifier,
	orders OrderProcessor,
	answerer CallbackAnswerer,
	debounce Debouncer,
	admin AdminFlow,
) *telegramHandler {
	return &telegramHandler{
		logger:      logger.With(slog.String("handler", "telegram")),
		source:      source,
		pollTimeout: cfg.PollTimeout,
		channelID:   cfg.ChannelID,
		cashierID:   cfg.CashierID,
		classifier:  classifier,
		orders:      orders,
		answerer:    answerer,
		debounce:    debounce,
		admin:       admin,
	}
}

// Consume polls updates until ctx is done. Updates are handled one at a
// time in arrival order.
func (h *telegramHandler) Consume(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(h.pollTimeout.Seconds())
	updates := h.source.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			h.handleUpdate(ctx, upd)
		}
	}
}

func (h *telegramHandler) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	start := time.Now()
	kind := "other"
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling update", slog.Int("update_id", upd.UpdateID), slog.Any("panic", r))
		}
		updateDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	switch {
	case upd.ChannelPost != nil:
		kind = "channel_post"
		h.handleChannelPost(ctx, upd.ChannelPost)
	case upd.CallbackQuery != nil:
		kind = "callback"
		h.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		kind = "message"
		h.handleMessage(ctx, upd.Message)
	}
	updatesTotal.WithLabelValues(kind).Inc()
}

func (h *telegramHandler) handleChannelPost(ctx context.Context, post *tgbotapi.Message) {
	if post.Chat == nil || post.Chat.ID != h.channelID {
		return
	}

	msg := InboundFromTelegram(post)
	ev, ok := h.classifier.Classify(msg)
	if !ok {
		eventsTotal.WithLabelValues("unclassified", "dropped").Inc()
		h.logger.Info("channel post not classified", slog.Int("message_id", post.MessageID))
		return
	}

	name := entities.EventName(ev)
	err := h.orders.HandleEvent(ctx, ev)
	eventsTotal.WithLabelValues(name, outcome(err)).Inc()
	if err != nil && !isExpected(err) {
		h.logger.Error("failed to handle event", slog.String("event", name), slog.Any("error", err))
	}
}

func (h *telegramHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil || cq.Message.Chat.ID != h.cashierID {
		h.answer(ctx, cq.ID)
		return
	}

	action, err := entities.ParseAction(cq.Data)
	if err != nil {
		actionsTotal.WithLabelValues("unknown", "invalid").Inc()
		h.logger.Warn("invalid callback data", slog.String("data", cq.Data), slog.Any("error", err))
		h.answer(ctx, cq.ID)
		return
	}

	// повтор в окне защиты гасится, пока заказ открыт; для закрытого заказа
	// сервис отвечает уведомлением о недоступности
	key := fmt.Sprintf("%d:%s", cq.Message.MessageID, cq.Data)
	if !h.debounce.Add(key, struct{}{}) && h.orders.IsOpen(action.OrderID) {
		actionsTotal.WithLabelValues(string(action.Kind), "debounced").Inc()
		h.logger.Debug("duplicate callback ignored", slog.String("data", cq.Data))
		h.answer(ctx, cq.ID)
		return
	}

	err = h.orders.HandleAction(ctx, entities.ButtonPress{
		CallbackID: cq.ID,
		MessageID:  cq.Message.MessageID,
		Action:     action,
	})
	actionsTotal.WithLabelValues(string(action.Kind), outcome(err)).Inc()
	if err != nil && !isExpected(err) {
		h.logger.Error("failed to handle action", slog.String("data", cq.Data), slog.Any("error", err))
	}
}

func (h *telegramHandler) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.Chat == nil || m.Chat.ID != h.cashierID || m.From == nil {
		return
	}
	h.admin.Handle(ctx, m.Chat.ID, m.From.ID, m.Text)
}

func (h *telegramHandler) answer(ctx context.Context, callbackID string) {
	if err := h.answerer.AnswerCallback(ctx, callbackID, ""); err != nil {
		h.logger.Error("failed to answer callback", slog.Any("error", err))
	}
}

func (h *telegramHandler) Close() error {
	h.source.StopReceivingUpdates()
	return nil
}

// isExpected reports errors that the service already logged as part of
// normal operation.
func isExpected(err error) bool {
	return errors.Is(err, entities.ErrOrderNotFound) ||
		errors.Is(err, entities.ErrOrderExists) ||
		errors.Is(err, entities.ErrNoOpenOrders)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "unknown_order"
	case errors.Is(err, entities.ErrOrderExists):
		return "duplicate"
	case errors.Is(err, entities.ErrNoOpenOrders):
		return "no_open_orders"
	default:
		return "error"
	}
}
