package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/classifier"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/registry"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/utils"
	"github.com/google/uuid"
)

type Notifier interface {
	// Send returns the id of the delivered message.
	Send(ctx context.Context, to entities.Audience, msg entities.OutboundMessage) (int, error)
	SendLocation(ctx context.Context, to entities.Audience, loc entities.Location) error
	// EditKeyboard replaces the inline keyboard of a sent message, nil clears it.
	EditKeyboard(ctx context.Context, to entities.Audience, messageID int, kb entities.Keyboard) error
	// AnswerCallback acknowledges a button press. A non-empty alert is shown to the user.
	AnswerCallback(ctx context.Context, callbackID, alert string) error
}

type OrderLogRepo interface {
	// Идемпотентна: повторная запись по тому же order_id игнорируется
	SaveOrderLog(ctx context.Context, e entities.OrderLogEntry) error
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.LifecycleEvent) error
}

type Option func(s *orderService)

func WithClock(now func() time.Time) Option {
	return func(s *orderService) { s.now = now }
}

func WithRetry(cfg utils.RetryConfig) Option {
	return func(s *orderService) { s.retry = cfg }
}

type orderService struct {
	logger    *slog.Logger
	registry  *registry.Registry
	notifier  Notifier
	orderLog  OrderLogRepo
	publisher EventPublisher
	retry     utils.RetryConfig
	now       func() time.Time

	// mu serializes channel events and button presses together with
	// every send they cause.
	mu              sync.Mutex
	pendingLocation *entities.Location
}

func NewOrderService(
	logger *slog.Logger,
	reg *registry.Registry,
	notifier Notifier,
	orderLog OrderLogRepo,
	publisher EventPublisher,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		registry:  reg,
		notifier:  notifier,
		orderLog:  orderLog,
		publisher: publisher,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleEvent applies a classified channel event. The returned error only
// reports the outcome, every failure is already logged.
func (s *orderService) HandleEvent(ctx context.Context, ev entities.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case entities.NewOrder:
		return s.createOrder(ctx, e)
	case entities.LocationUpdate:
		return s.attachLocation(ctx, entities.Location{Latitude: e.Latitude, Longitude: e.Longitude})
	case entities.Reminder:
		return s.forward(ctx, reminderMessage(e.Text))
	case entities.TimeLeftQuery:
		return s.forward(ctx, timeLeftMessage(e.Text))
	case entities.RatingFeedback:
		return s.closeByNumber(ctx, e.OrderNumber)
	case entities.OrderDeliveredRating:
		return s.closeWithNotice(ctx, e.OrderID, entities.LifecycleRated, deliveredRatingMessage(e.OrderNumber, e.Stars))
	case entities.ReportedCancellation:
		return s.closeWithNotice(ctx, e.OrderID, entities.LifecycleCancelled, reportedCancellationMessage(e.OrderNumber, e.OrderID))
	case entities.StandardCancellation:
		return s.closeWithNotice(ctx, e.OrderID, entities.LifecycleCancelled, standardCancellationMessage(e.OrderNumber, e.OrderID))
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// createOrder registers the order only after the staff prompt was delivered,
// so every open order has buttons staff can act on.
func (s *orderService) createOrder(ctx context.Context, e entities.NewOrder) error {
	if _, ok := s.registry.Get(e.OrderID); ok {
		s.logger.Warn("order already registered, keeping the first one", slog.String("order_id", e.OrderID))
		return entities.ErrOrderExists
	}

	order := entities.Order{
		ID:               e.OrderID,
		Number:           classifier.OrderNumber(e.RawText),
		Details:          e.RawText,
		ChannelMessageID: e.MessageID,
		State:            entities.StateStaffNotified,
		CreatedAt:        s.now(),
	}
	loc := s.pendingLocation
	if loc != nil {
		order.Location = loc
		order.Details += classifier.LocationAnnotation()
	}

	msgID, err := s.notifier.Send(ctx, entities.AudienceStaff, staffPrompt(order, false))
	if err != nil {
		s.logger.Error("failed to send staff prompt, order not registered", slog.String("order_id", order.ID), slog.Any("error", err))
		return fmt.Errorf("failed to send staff prompt: %w", err)
	}
	order.StaffMessageID = msgID

	if err := s.registry.Create(order); err != nil {
		return err
	}
	s.pendingLocation = nil

	if loc != nil {
		if err := s.notifier.SendLocation(ctx, entities.AudienceStaff, *loc); err != nil {
			s.logger.Error("failed to send location", slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}

	s.logger.Info("order registered", slog.String("order_id", order.ID), slog.Int("order_number", order.Number))
	s.publish(ctx, entities.LifecycleCreated, order, "")
	return nil
}

// attachLocation binds loc to the most recently created open order. With no
// open order the location waits for the next one.
func (s *orderService) attachLocation(ctx context.Context, loc entities.Location) error {
	s.pendingLocation = &loc

	id, ok := s.registry.Latest()
	if !ok {
		s.logger.Warn("location received with no open orders")
		return entities.ErrNoOpenOrders
	}
	if err := s.registry.AttachLocation(id, loc, classifier.LocationAnnotation()); err != nil {
		return err
	}
	s.pendingLocation = nil

	order, _ := s.registry.Get(id)
	if err := s.notifier.SendLocation(ctx, entities.AudienceStaff, loc); err != nil {
		s.logger.Error("failed to send location", slog.String("order_id", id), slog.Any("error", err))
	}

	prompt, state := refreshedPrompt(order)
	msgID, err := s.notifier.Send(ctx, entities.AudienceStaff, prompt)
	if err != nil {
		s.logger.Error("failed to send refreshed prompt", slog.String("order_id", id), slog.Any("error", err))
		return nil
	}
	if order.StaffMessageID != 0 {
		s.clearKeyboard(ctx, id, order.StaffMessageID)
	}
	s.logRegistryErr(s.registry.SetStaffMessage(id, msgID))
	s.logRegistryErr(s.registry.SetState(id, state))

	s.logger.Info("location attached", slog.String("order_id", id))
	s.publish(ctx, entities.LifecycleLocated, order, fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
	return nil
}

func (s *orderService) forward(ctx context.Context, msg entities.OutboundMessage) error {
	if _, err := s.notifier.Send(ctx, entities.AudienceStaff, msg); err != nil {
		s.logger.Error("failed to forward message to staff", slog.Any("error", err))
	}
	return nil
}

func (s *orderService) closeByNumber(ctx context.Context, number int) error {
	id, ok := s.registry.FindByNumber(number)
	if !ok {
		s.logger.Warn("rating for unknown order", slog.Int("order_number", number))
		return entities.ErrOrderNotFound
	}
	order, _ := s.registry.Get(id)
	s.clearStaffButtons(ctx, order)
	s.registry.Remove(id)

	s.logger.Info("order closed by rating", slog.String("order_id", id))
	s.publish(ctx, entities.LifecycleRated, order, "")
	return nil
}

func (s *orderService) closeWithNotice(ctx context.Context, id string, typ entities.LifecycleEventType, notice entities.OutboundMessage) error {
	order, ok := s.registry.Get(id)
	if !ok {
		s.logger.Warn("event for unknown order", slog.String("order_id", id), slog.String("event", string(typ)))
		return entities.ErrOrderNotFound
	}

	s.clearStaffButtons(ctx, order)
	if _, err := s.notifier.Send(ctx, entities.AudienceStaff, notice); err != nil {
		s.logger.Error("failed to notify staff", slog.String("order_id", id), slog.Any("error", err))
	}
	s.registry.Remove(id)

	s.logger.Info("order closed", slog.String("order_id", id), slog.String("event", string(typ)))
	s.publish(ctx, typ, order, "")
	return nil
}

// HandleAction applies a staff button press. Every press is acknowledged
// before any other side effect.
func (s *orderService) HandleAction(ctx context.Context, press entities.ButtonPress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := press.Action
	order, ok := s.registry.Get(a.OrderID)
	if !ok {
		s.logger.Warn("button pressed for unknown order", slog.String("order_id", a.OrderID), slog.String("action", string(a.Kind)))
		s.answer(ctx, press.CallbackID, textNoLongerAvailable)
		return entities.ErrOrderNotFound
	}
	s.answer(ctx, press.CallbackID, "")

	switch a.Kind {
	case entities.ActionAccept:
		s.showKeyboard(ctx, order.ID, press.MessageID, timeKeyboard(order.ID, ""), entities.StateAwaitingTimeSelection)
	case entities.ActionReject:
		s.showKeyboard(ctx, order.ID, press.MessageID, confirmRejectKeyboard(order.ID), entities.StateAwaitingRejectConfirm)
	case entities.ActionComplain:
		s.showKeyboard(ctx, order.ID, press.MessageID, complaintKeyboard(order.ID), entities.StateAwaitingComplaintReason)
	case entities.ActionBack:
		s.showKeyboard(ctx, order.ID, press.MessageID, promptKeyboard(order.ID), entities.StateStaffNotified)
	case entities.ActionTime:
		s.selectTime(ctx, order, press.MessageID, a.PrepTime)
	case entities.ActionReady:
		s.dispatch(ctx, order, press.MessageID)
	case entities.ActionConfirmReject:
		s.reject(ctx, order)
	case entities.ActionReport:
		s.complain(ctx, order, a.Reason)
	default:
		return fmt.Errorf("%w: %s", entities.ErrInvalidAction, a.Kind)
	}
	return nil
}

func (s *orderService) showKeyboard(ctx context.Context, id string, msgID int, kb entities.Keyboard, state entities.OrderState) {
	if err := s.notifier.EditKeyboard(ctx, entities.AudienceStaff, msgID, kb); err != nil {
		s.logger.Error("failed to edit keyboard", slog.String("order_id", id), slog.Any("error", err))
	}
	s.logRegistryErr(s.registry.SetState(id, state))
}

// selectTime records the order in the log before telling the public channel.
// Selecting again is allowed, the log write is idempotent.
func (s *orderService) selectTime(ctx context.Context, order entities.Order, msgID int, p entities.PrepTime) {
	if err := s.notifier.EditKeyboard(ctx, entities.AudienceStaff, msgID, timeKeyboard(order.ID, p)); err != nil {
		s.logger.Error("failed to edit keyboard", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	facts := classifier.ExtractFacts(order.Details)
	entry := entities.OrderLogEntry{
		OrderID:     order.ID,
		OrderNumber: facts.OrderNumber,
		Restaurant:  facts.Restaurant,
		TotalPrice:  facts.TotalPrice,
		CreatedAt:   s.now(),
	}
	err := utils.Retry(ctx, s.retry, func() error {
		return s.orderLog.SaveOrderLog(ctx, entry)
	})
	if err != nil {
		orderLogFailures.Inc()
		s.logger.Error("failed to save order log", slog.String("order_id", order.ID), slog.Any("error", err))
		if _, err := s.notifier.Send(ctx, entities.AudienceStaff, persistenceWarning(order.ID)); err != nil {
			s.logger.Error("failed to send persistence warning", slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}

	if _, err := s.notifier.Send(ctx, entities.AudiencePublic, inKitchenMessage(order.ID, p)); err != nil {
		s.logger.Error("failed to notify public channel", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.logRegistryErr(s.registry.SetPrepTime(order.ID, p))

	s.logger.Info("prep time selected", slog.String("order_id", order.ID), slog.String("prep_time", string(p)))
	s.publish(ctx, entities.LifecycleTimeSelected, order, string(p))
}

func (s *orderService) dispatch(ctx context.Context, order entities.Order, msgID int) {
	if _, err := s.notifier.Send(ctx, entities.AudiencePublic, dispatchedMessage(order.ID)); err != nil {
		s.logger.Error("failed to notify public channel", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.clearKeyboard(ctx, order.ID, msgID)
	s.logRegistryErr(s.registry.SetState(order.ID, entities.StateDispatched))

	s.logger.Info("order dispatched", slog.String("order_id", order.ID))
	s.publish(ctx, entities.LifecycleDispatched, order, "")
}

func (s *orderService) reject(ctx context.Context, order entities.Order) {
	s.clearStaffButtons(ctx, order)
	if _, err := s.notifier.Send(ctx, entities.AudiencePublic, rejectionMessage(order.ID)); err != nil {
		s.logger.Error("failed to notify public channel", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.registry.Remove(order.ID)

	s.logger.Info("order rejected", slog.String("order_id", order.ID))
	s.publish(ctx, entities.LifecycleRejected, order, "")
}

func (s *orderService) complain(ctx context.Context, order entities.Order, reason entities.ComplaintReason) {
	if _, err := s.notifier.Send(ctx, entities.AudienceEscalation, complaintEscalationMessage(order, reason)); err != nil {
		s.logger.Error("failed to send complaint", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	if _, err := s.notifier.Send(ctx, entities.AudiencePublic, complaintPublicMessage(order.ID, reason)); err != nil {
		s.logger.Error("failed to notify public channel", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.clearStaffButtons(ctx, order)
	if _, err := s.notifier.Send(ctx, entities.AudienceStaff, entities.OutboundMessage{Text: textComplaintSent}); err != nil {
		s.logger.Error("failed to confirm complaint", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	s.registry.Remove(order.ID)

	s.logger.Info("complaint filed", slog.String("order_id", order.ID), slog.String("reason", string(reason)))
	s.publish(ctx, entities.LifecycleComplaint, order, string(reason))
}

// clearStaffButtons removes the keyboard of the order's current prompt.
func (s *orderService) clearStaffButtons(ctx context.Context, order entities.Order) {
	if order.StaffMessageID == 0 {
		s.logger.Warn("order has no staff message to clear", slog.String("order_id", order.ID))
		return
	}
	s.clearKeyboard(ctx, order.ID, order.StaffMessageID)
}

func (s *orderService) clearKeyboard(ctx context.Context, id string, msgID int) {
	if err := s.notifier.EditKeyboard(ctx, entities.AudienceStaff, msgID, nil); err != nil {
		s.logger.Error("failed to clear keyboard", slog.String("order_id", id), slog.Any("error", err))
	}
}

func (s *orderService) answer(ctx context.Context, callbackID, alert string) {
	if err := s.notifier.AnswerCallback(ctx, callbackID, alert); err != nil {
		s.logger.Error("failed to answer callback", slog.Any("error", err))
	}
}

func (s *orderService) publish(ctx context.Context, typ entities.LifecycleEventType, order entities.Order, detail string) {
	e := entities.LifecycleEvent{
		ID:          uuid.NewString(),
		Type:        typ,
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Detail:      detail,
		OccurredAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn("failed to publish lifecycle event", slog.String("type", string(typ)), slog.Any("error", err))
	}
}

// logRegistryErr logs registry errors that can only happen if the record
// vanished while the lock was held.
func (s *orderService) logRegistryErr(err error) {
	if err != nil {
		s.logger.Error("registry update failed", slog.Any("error", err))
	}
}

// OpenOrders returns a snapshot of the orders awaiting staff action.
func (s *orderService) OpenOrders() []entities.Order {
	return s.registry.List()
}

// IsOpen reports whether the order is still in the registry.
func (s *orderService) IsOpen(orderID string) bool {
	_, ok := s.registry.Get(orderID)
	return ok
}

// OpenOrder returns a single open order.
func (s *orderService) OpenOrder(id string) (entities.Order, error) {
	order, ok := s.registry.Get(id)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}
