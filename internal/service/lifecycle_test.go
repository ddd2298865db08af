package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/classifier"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/registry"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/service"
	mocks "github.com/SergeyBogomolovv/restaurant-order-bot/internal/service/mocks"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	orderText    = "🧾 رقم الطلب: 15\nالمطعم: كبابجي\nالمجموع الكلي: 50,000 ل.س\n📌 معرف الطلب: `ORD42`"
	unavailable  = "⚠️ هذا الطلب لم يعد متاحًا."
	locationNote = "📍 *تم إرفاق الموقع الجغرافي*"
)

type call struct {
	method    string
	to        entities.Audience
	msg       entities.OutboundMessage
	messageID int
	keyboard  entities.Keyboard
	alert     string
}

type fakeNotifier struct {
	mu      sync.Mutex
	calls   []call
	nextID  int
	sendErr map[entities.Audience]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{nextID: 100, sendErr: make(map[entities.Audience]error)}
}

func (f *fakeNotifier) Send(_ context.Context, to entities.Audience, msg entities.OutboundMessage) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: "send", to: to, msg: msg})
	if err := f.sendErr[to]; err != nil {
		return 0, err
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) SendLocation(_ context.Context, to entities.Audience, _ entities.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: "location", to: to})
	return nil
}

func (f *fakeNotifier) EditKeyboard(_ context.Context, to entities.Audience, messageID int, kb entities.Keyboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: "edit", to: to, messageID: messageID, keyboard: kb})
	return nil
}

func (f *fakeNotifier) AnswerCallback(_ context.Context, _ string, alert string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: "answer", alert: alert})
	return nil
}

func (f *fakeNotifier) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeNotifier) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		res = append(res, c.method+":"+c.to.String())
	}
	return res
}

func (f *fakeNotifier) sends(to entities.Audience) []entities.OutboundMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []entities.OutboundMessage
	for _, c := range f.calls {
		if c.method == "send" && c.to == to {
			res = append(res, c.msg)
		}
	}
	return res
}

func (f *fakeNotifier) last(method string) call {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].method == method {
			return f.calls[i]
		}
	}
	return call{}
}

type orderService interface {
	HandleEvent(ctx context.Context, ev entities.Event) error
	HandleAction(ctx context.Context, press entities.ButtonPress) error
	IsOpen(orderID string) bool
}

type fixture struct {
	svc      orderService
	reg      *registry.Registry
	notifier *fakeNotifier
	orderLog *mocks.MockOrderLogRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := registry.New()
	notifier := newFakeNotifier()
	orderLog := mocks.NewMockOrderLogRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := service.NewOrderService(logger, reg, notifier, orderLog, publisher,
		service.WithClock(func() time.Time { return now }),
		service.WithRetry(utils.RetryConfig{InitialDelay: time.Millisecond, MaxAttempts: 2}),
	)
	return fixture{svc: svc, reg: reg, notifier: notifier, orderLog: orderLog}
}

func (f fixture) newOrder(t *testing.T, id, text string) entities.Order {
	t.Helper()
	require.NoError(t, f.svc.HandleEvent(context.Background(), entities.NewOrder{OrderID: id, RawText: text, MessageID: 1}))
	order, ok := f.reg.Get(id)
	require.True(t, ok)
	return order
}

func (f fixture) press(kind entities.ActionKind, order entities.Order) entities.ButtonPress {
	return entities.ButtonPress{
		CallbackID: "cb",
		MessageID:  order.StaffMessageID,
		Action:     entities.Action{Kind: kind, OrderID: order.ID},
	}
}

func TestOrderService_NewOrder(t *testing.T) {
	f := newFixture(t)

	order := f.newOrder(t, "ORD42", orderText)

	assert.Equal(t, []string{"send:staff"}, f.notifier.methods())
	prompt := f.notifier.sends(entities.AudienceStaff)[0]
	assert.True(t, prompt.Markdown)
	assert.Contains(t, prompt.Text, orderText)
	require.Len(t, prompt.Keyboard, 3)
	assert.Equal(t, entities.ActionAccept, prompt.Keyboard[0][0].Action.Kind)
	assert.Equal(t, entities.ActionReject, prompt.Keyboard[1][0].Action.Kind)
	assert.Equal(t, entities.ActionComplain, prompt.Keyboard[2][0].Action.Kind)

	assert.Equal(t, 101, order.StaffMessageID)
	assert.Equal(t, 15, order.Number)
	assert.Equal(t, entities.StateStaffNotified, order.State)
}

func TestOrderService_DuplicateNewOrder(t *testing.T) {
	f := newFixture(t)
	f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	err := f.svc.HandleEvent(context.Background(), entities.NewOrder{OrderID: "ORD42", RawText: "معرف الطلب: ORD42 changed"})

	assert.ErrorIs(t, err, entities.ErrOrderExists)
	assert.Empty(t, f.notifier.methods())
	order, _ := f.reg.Get("ORD42")
	assert.Equal(t, orderText, order.Details)
	assert.Equal(t, 101, order.StaffMessageID)
}

func TestOrderService_UnknownOrderButton(t *testing.T) {
	testCases := []entities.Action{
		{Kind: entities.ActionAccept, OrderID: "ghost"},
		{Kind: entities.ActionTime, PrepTime: "15", OrderID: "ghost"},
		{Kind: entities.ActionReport, Reason: entities.ReasonPhone, OrderID: "ghost"},
		{Kind: entities.ActionConfirmReject, OrderID: "ghost"},
	}

	for _, a := range testCases {
		t.Run(a.Encode(), func(t *testing.T) {
			f := newFixture(t)

			err := f.svc.HandleAction(context.Background(), entities.ButtonPress{CallbackID: "cb", MessageID: 5, Action: a})

			assert.ErrorIs(t, err, entities.ErrOrderNotFound)
			assert.Equal(t, []string{"answer:staff"}, f.notifier.methods())
			assert.Equal(t, unavailable, f.notifier.last("answer").alert)
		})
	}
}

func TestOrderService_Accept(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionAccept, order)))

	assert.Equal(t, []string{"answer:staff", "edit:staff"}, f.notifier.methods())
	assert.Empty(t, f.notifier.last("answer").alert)

	edit := f.notifier.last("edit")
	assert.Equal(t, order.StaffMessageID, edit.messageID)
	require.Len(t, edit.keyboard, len(entities.PrepTimes)+2)
	for i, p := range entities.PrepTimes {
		assert.Equal(t, entities.Action{Kind: entities.ActionTime, PrepTime: p, OrderID: "ORD42"}, edit.keyboard[i][0].Action)
	}
	assert.Equal(t, entities.PrepTimeOver90, edit.keyboard[len(entities.PrepTimes)][0].Action.PrepTime)
	assert.Equal(t, entities.ActionBack, edit.keyboard[len(edit.keyboard)-1][0].Action.Kind)

	got, _ := f.reg.Get("ORD42")
	assert.Equal(t, entities.StateAwaitingTimeSelection, got.State)
}

func TestOrderService_BackRestoresPrompt(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionReject, order)))

	confirm := f.notifier.last("edit")
	require.Len(t, confirm.keyboard, 2)
	assert.Equal(t, entities.ActionConfirmReject, confirm.keyboard[0][0].Action.Kind)

	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionBack, order)))

	back := f.notifier.last("edit")
	require.Len(t, back.keyboard, 3)
	assert.Equal(t, entities.ActionAccept, back.keyboard[0][0].Action.Kind)
	got, _ := f.reg.Get("ORD42")
	assert.Equal(t, entities.StateStaffNotified, got.State)
}

func TestOrderService_SelectTime(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	f.orderLog.EXPECT().SaveOrderLog(mock.Anything, entities.OrderLogEntry{
		OrderID:     "ORD42",
		OrderNumber: 15,
		Restaurant:  "كبابجي",
		TotalPrice:  50000,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}).Return(nil).Once()

	press := f.press(entities.ActionTime, order)
	press.Action.PrepTime = "15"
	require.NoError(t, f.svc.HandleAction(context.Background(), press))

	assert.Equal(t, []string{"answer:staff", "edit:staff", "send:public"}, f.notifier.methods())

	edit := f.notifier.last("edit")
	assert.True(t, strings.HasPrefix(edit.keyboard[2][0].Text, "✅"))
	assert.Equal(t, entities.ActionReady, edit.keyboard[len(edit.keyboard)-2][0].Action.Kind)

	public := f.notifier.sends(entities.AudiencePublic)[0]
	assert.Contains(t, public.Text, "ORD42")
	assert.Contains(t, public.Text, "15 دقيقة")

	got, ok := f.reg.Get("ORD42")
	require.True(t, ok)
	assert.Equal(t, entities.StateTimeSelected, got.State)
	assert.Equal(t, entities.PrepTime("15"), got.PrepTime)
}

func TestOrderService_SelectTimeOver90(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.orderLog.EXPECT().SaveOrderLog(mock.Anything, mock.Anything).Return(nil).Once()

	press := f.press(entities.ActionTime, order)
	press.Action.PrepTime = entities.PrepTimeOver90
	require.NoError(t, f.svc.HandleAction(context.Background(), press))

	public := f.notifier.sends(entities.AudiencePublic)[0]
	assert.Contains(t, public.Text, "أكثر من 90 دقيقة")
}

func TestOrderService_SelectTimePublicSendFails(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.sendErr[entities.AudiencePublic] = errors.New("chat not found")

	f.orderLog.EXPECT().SaveOrderLog(mock.Anything, mock.Anything).Return(nil).Once()

	press := f.press(entities.ActionTime, order)
	press.Action.PrepTime = "30"
	require.NoError(t, f.svc.HandleAction(context.Background(), press))

	got, ok := f.reg.Get("ORD42")
	require.True(t, ok)
	assert.Equal(t, entities.PrepTime("30"), got.PrepTime)
}

func TestOrderService_SelectTimeLogFails(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	f.orderLog.EXPECT().SaveOrderLog(mock.Anything, mock.Anything).Return(errors.New("db down")).Times(2)

	press := f.press(entities.ActionTime, order)
	press.Action.PrepTime = "30"
	require.NoError(t, f.svc.HandleAction(context.Background(), press))

	assert.Equal(t, []string{"answer:staff", "edit:staff", "send:staff", "send:public"}, f.notifier.methods())
	warning := f.notifier.sends(entities.AudienceStaff)[0]
	assert.Contains(t, warning.Text, "ORD42")
}

func TestOrderService_Ready(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionReady, order)))

	assert.Equal(t, []string{"answer:staff", "send:public", "edit:staff"}, f.notifier.methods())
	assert.Nil(t, f.notifier.last("edit").keyboard)
	got, ok := f.reg.Get("ORD42")
	require.True(t, ok)
	assert.Equal(t, entities.StateDispatched, got.State)
}

func TestOrderService_ConfirmReject(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionConfirmReject, order)))

	assert.Equal(t, []string{"answer:staff", "edit:staff", "send:public"}, f.notifier.methods())
	edit := f.notifier.last("edit")
	assert.Equal(t, order.StaffMessageID, edit.messageID)
	assert.Nil(t, edit.keyboard)
	assert.Contains(t, f.notifier.sends(entities.AudiencePublic)[0].Text, "تم رفض الطلب")
	assert.Equal(t, 0, f.reg.Len())
	assert.False(t, f.svc.IsOpen("ORD42"))

	f.notifier.reset()
	err := f.svc.HandleAction(context.Background(), f.press(entities.ActionConfirmReject, order))
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.Equal(t, []string{"answer:staff"}, f.notifier.methods())
	assert.Equal(t, unavailable, f.notifier.last("answer").alert)
}

func TestOrderService_ConfirmRejectConcurrent(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	f.notifier.reset()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.svc.HandleAction(context.Background(), f.press(entities.ActionConfirmReject, order))
		}()
	}
	wg.Wait()

	assert.Len(t, f.notifier.sends(entities.AudiencePublic), 1)
	assert.Equal(t, 0, f.reg.Len())
}

func TestOrderService_Complaint(t *testing.T) {
	f := newFixture(t)
	order := f.newOrder(t, "ORD42", orderText)
	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionComplain, order)))

	reasons := f.notifier.last("edit").keyboard
	require.Len(t, reasons, len(entities.ComplaintReasons)+1)
	for i, r := range entities.ComplaintReasons {
		assert.Equal(t, r, reasons[i][0].Action.Reason)
	}
	f.notifier.reset()

	press := f.press(entities.ActionReport, order)
	press.Action.Reason = entities.ReasonPhone
	require.NoError(t, f.svc.HandleAction(context.Background(), press))

	assert.Equal(t,
		[]string{"answer:staff", "send:escalation", "send:public", "edit:staff", "send:staff"},
		f.notifier.methods(),
	)
	escalation := f.notifier.sends(entities.AudienceEscalation)[0]
	assert.Contains(t, escalation.Text, "📞 رقم الهاتف غير صحيح")
	assert.Contains(t, escalation.Text, orderText)
	assert.Equal(t, 0, f.reg.Len())
}

func TestOrderService_LocationWithoutOrders(t *testing.T) {
	f := newFixture(t)

	err := f.svc.HandleEvent(context.Background(), entities.LocationUpdate{Latitude: 33.5, Longitude: 36.3})

	assert.ErrorIs(t, err, entities.ErrNoOpenOrders)
	assert.Empty(t, f.notifier.methods())

	order := f.newOrder(t, "ORD42", orderText)
	assert.Equal(t, []string{"send:staff", "location:staff"}, f.notifier.methods())
	assert.True(t, strings.HasSuffix(order.Details, locationNote))
	require.NotNil(t, order.Location)
	assert.Equal(t, 33.5, order.Location.Latitude)
}

func TestOrderService_LocationAttachesToLatest(t *testing.T) {
	f := newFixture(t)
	f.newOrder(t, "B", "معرف الطلب: B")
	latest := f.newOrder(t, "A", "معرف الطلب: A")
	f.notifier.reset()

	loc := entities.LocationUpdate{Latitude: 33.5, Longitude: 36.3}
	require.NoError(t, f.svc.HandleEvent(context.Background(), loc))

	assert.Equal(t, []string{"location:staff", "send:staff", "edit:staff"}, f.notifier.methods())
	assert.Equal(t, latest.StaffMessageID, f.notifier.last("edit").messageID)
	assert.Nil(t, f.notifier.last("edit").keyboard)

	got, _ := f.reg.Get("A")
	assert.Equal(t, 103, got.StaffMessageID)
	assert.Equal(t, 1, strings.Count(got.Details, locationNote))

	require.NoError(t, f.svc.HandleEvent(context.Background(), loc))
	got, _ = f.reg.Get("A")
	assert.Equal(t, 1, strings.Count(got.Details, locationNote))

	untouched, _ := f.reg.Get("B")
	assert.Nil(t, untouched.Location)
}

func TestOrderService_ChannelCompletion(t *testing.T) {
	testCases := []struct {
		name      string
		event     entities.Event
		wantCalls []string
		wantText  string
	}{
		{
			name:      "delivered rating",
			event:     entities.OrderDeliveredRating{OrderNumber: 15, OrderID: "ORD42", Stars: "⭐⭐⭐"},
			wantCalls: []string{"edit:staff", "send:staff"},
			wantText:  "✅ الزبون استلم طلبه رقم 15 وقام بتقييمه بـ ⭐⭐⭐",
		},
		{
			name:      "reported cancellation",
			event:     entities.ReportedCancellation{OrderNumber: 15, OrderID: "ORD42"},
			wantCalls: []string{"edit:staff", "send:staff"},
			wantText:  "تأخر المطعم وتم إنشاء تقرير",
		},
		{
			name:      "standard cancellation",
			event:     entities.StandardCancellation{OrderNumber: 15, OrderID: "ORD42"},
			wantCalls: []string{"edit:staff", "send:staff"},
			wantText:  "تردد الزبون وقرر الإلغاء",
		},
		{
			name:      "rating feedback",
			event:     entities.RatingFeedback{OrderNumber: 15},
			wantCalls: []string{"edit:staff"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.newOrder(t, "ORD42", orderText)
			f.notifier.reset()

			require.NoError(t, f.svc.HandleEvent(context.Background(), tc.event))

			assert.Equal(t, tc.wantCalls, f.notifier.methods())
			if tc.wantText != "" {
				assert.Contains(t, f.notifier.sends(entities.AudienceStaff)[0].Text, tc.wantText)
			}
			assert.Equal(t, 0, f.reg.Len())

			f.notifier.reset()
			err := f.svc.HandleEvent(context.Background(), tc.event)
			assert.ErrorIs(t, err, entities.ErrOrderNotFound)
			assert.Empty(t, f.notifier.methods())
		})
	}
}

func TestOrderService_PromptSendFails(t *testing.T) {
	f := newFixture(t)
	require.ErrorIs(t, f.svc.HandleEvent(context.Background(), entities.LocationUpdate{Latitude: 33.5, Longitude: 36.3}), entities.ErrNoOpenOrders)
	f.notifier.sendErr[entities.AudienceStaff] = errors.New("forbidden")

	err := f.svc.HandleEvent(context.Background(), entities.NewOrder{OrderID: "ORD42", RawText: orderText})

	assert.Error(t, err)
	assert.Equal(t, 0, f.reg.Len())
	assert.False(t, f.svc.IsOpen("ORD42"))
	assert.Equal(t, []string{"send:staff"}, f.notifier.methods())

	// следующий пост с тем же заказом регистрирует его вместе с ожидающей локацией
	delete(f.notifier.sendErr, entities.AudienceStaff)
	f.notifier.reset()

	order := f.newOrder(t, "ORD42", orderText)
	assert.Equal(t, []string{"send:staff", "location:staff"}, f.notifier.methods())
	assert.NotZero(t, order.StaffMessageID)
	require.NotNil(t, order.Location)
}

func TestOrderService_LocationKeepsProgress(t *testing.T) {
	testCases := []struct {
		name      string
		advance   func(t *testing.T, f fixture, order entities.Order)
		wantState entities.OrderState
		checkKb   func(t *testing.T, kb entities.Keyboard)
	}{
		{
			name: "time selected",
			advance: func(t *testing.T, f fixture, order entities.Order) {
				f.orderLog.EXPECT().SaveOrderLog(mock.Anything, mock.Anything).Return(nil).Once()
				press := f.press(entities.ActionTime, order)
				press.Action.PrepTime = "15"
				require.NoError(t, f.svc.HandleAction(context.Background(), press))
			},
			wantState: entities.StateTimeSelected,
			checkKb: func(t *testing.T, kb entities.Keyboard) {
				require.Len(t, kb, len(entities.PrepTimes)+3)
				assert.True(t, strings.HasPrefix(kb[2][0].Text, "✅"))
				assert.Equal(t, entities.ActionReady, kb[len(kb)-2][0].Action.Kind)
			},
		},
		{
			name: "dispatched",
			advance: func(t *testing.T, f fixture, order entities.Order) {
				require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionReady, order)))
			},
			wantState: entities.StateDispatched,
			checkKb: func(t *testing.T, kb entities.Keyboard) {
				assert.Empty(t, kb)
			},
		},
		{
			name: "awaiting time selection starts over",
			advance: func(t *testing.T, f fixture, order entities.Order) {
				require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionAccept, order)))
			},
			wantState: entities.StateStaffNotified,
			checkKb: func(t *testing.T, kb entities.Keyboard) {
				require.Len(t, kb, 3)
				assert.Equal(t, entities.ActionAccept, kb[0][0].Action.Kind)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			order := f.newOrder(t, "ORD42", orderText)
			tc.advance(t, f, order)
			f.notifier.reset()

			require.NoError(t, f.svc.HandleEvent(context.Background(), entities.LocationUpdate{Latitude: 33.5, Longitude: 36.3}))

			assert.Equal(t, []string{"location:staff", "send:staff", "edit:staff"}, f.notifier.methods())
			prompt := f.notifier.sends(entities.AudienceStaff)[0]
			assert.Contains(t, prompt.Text, locationNote)
			tc.checkKb(t, prompt.Keyboard)
			assert.Empty(t, f.notifier.sends(entities.AudiencePublic))

			got, _ := f.reg.Get("ORD42")
			assert.Equal(t, tc.wantState, got.State)
			assert.NotEqual(t, order.StaffMessageID, got.StaffMessageID)
		})
	}
}

// Уведомления бота возвращаются в канал и не должны порождать новые заказы.
func TestOrderService_OwnNoticesNotReclassified(t *testing.T) {
	f := newFixture(t)
	f.orderLog.EXPECT().SaveOrderLog(mock.Anything, mock.Anything).Return(nil).Once()

	kitchen := f.newOrder(t, "K1", "معرف الطلب: K1")
	press := f.press(entities.ActionTime, kitchen)
	press.Action.PrepTime = "15"
	require.NoError(t, f.svc.HandleAction(context.Background(), press))
	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionReady, kitchen)))

	rejected := f.newOrder(t, "R1", "معرف الطلب: R1")
	require.NoError(t, f.svc.HandleAction(context.Background(), f.press(entities.ActionConfirmReject, rejected)))

	reported := f.newOrder(t, "C1", "معرف الطلب: C1")
	complaint := f.press(entities.ActionReport, reported)
	complaint.Action.Reason = entities.ReasonOther
	require.NoError(t, f.svc.HandleAction(context.Background(), complaint))

	notices := append(f.notifier.sends(entities.AudiencePublic), f.notifier.sends(entities.AudienceEscalation)...)
	require.Len(t, notices, 5)

	c := classifier.New()
	strip := strings.NewReplacer("*", "", "`", "")
	for _, n := range notices {
		for _, text := range []string{n.Text, strip.Replace(n.Text)} {
			ev, ok := c.Classify(entities.InboundMessage{Text: text})
			assert.False(t, ok, "%T from %q", ev, text)
		}
	}
	assert.False(t, f.svc.IsOpen("R1"))
	assert.True(t, f.svc.IsOpen("K1"))
}

func TestOrderService_ForwardToStaff(t *testing.T) {
	testCases := []struct {
		name   string
		event  entities.Event
		header string
	}{
		{name: "reminder", event: entities.Reminder{Text: "🔔 تذكير من الزبون"}, header: "🔔 *تذكير من الزبون!*"},
		{name: "time left", event: entities.TimeLeftQuery{Text: "كم يتبقى"}, header: "⏳ *استفسار من الزبون:*"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			require.NoError(t, f.svc.HandleEvent(context.Background(), tc.event))

			sent := f.notifier.sends(entities.AudienceStaff)
			require.Len(t, sent, 1)
			assert.True(t, strings.HasPrefix(sent[0].Text, tc.header))
		})
	}
}
