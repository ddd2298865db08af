package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/go-playground/validator/v10"
)

type Replier interface {
	Reply(ctx context.Context, chatID int64, text string, menu entities.Menu) error
}

type StatsSummarizer interface {
	Summary(ctx context.Context, period entities.Period) (entities.Stats, error)
}

type Roster interface {
	Add(ctx context.Context, p entities.DeliveryPerson) error
	List(ctx context.Context, restaurant string) ([]entities.DeliveryPerson, error)
	Delete(ctx context.Context, restaurant, name string) error
}

const (
	btnRoster       = "🚚 الدليفري"
	btnAddCourier   = "➕ إضافة دليفري"
	btnDelCourier   = "❌ حذف دليفري"
	btnBack         = "🔙 رجوع"
	cmdStart        = "/start"
	textReady       = "✅ بوت المطعم جاهز لاستقبال الطلبات من القناة!"
	textRosterMenu  = "📦 إدارة الدليفري:\nاختر الإجراء المطلوب:"
	textRosterBack  = "⬅️ تم الرجوع إلى قائمة الدليفري."
	textAskName     = "🧑‍💼 ما اسم الدليفري؟"
	textAskPhone    = "📞 ما رقم الهاتف؟"
	textChooseName  = "🗑 اختر اسم الدليفري الذي تريد حذفه:"
	textRosterEmpty = "⚠️ لا يوجد أي دليفري مسجل حالياً."
	textInvalid     = "⚠️ البيانات غير صالحة. الاسم مطلوب ورقم الهاتف من 6 إلى 20 خانة."
	textExists      = "⚠️ يوجد دليفري بهذا الاسم مسبقًا."
	textNotFound    = "⚠️ لا يوجد دليفري بهذا الاسم."
	textSaveFailed  = "⚠️ حدث خطأ أثناء حفظ الدليفري. حاول مرة أخرى."
	textDelFailed   = "⚠️ حدث خطأ أثناء حذف الدليفري."
	textListFailed  = "⚠️ حدث خطأ أثناء عرض القائمة."
	textStatsFailed = "⚠️ تعذر استخراج الإحصائيات."
)

type statsButton struct {
	label  string
	title  string
	period entities.Period
}

var statsButtons = []statsButton{
	{label: "📊 عدد الطلبات اليوم والدخل", title: "📊 إحصائيات اليوم", period: entities.PeriodToday},
	{label: "📅 عدد الطلبات أمس والدخل", title: "📅 إحصائيات يوم أمس", period: entities.PeriodYesterday},
	{label: "🗓️ طلبات الشهر الحالي", title: "🗓️ إحصائيات الشهر الحالي", period: entities.PeriodThisMonth},
	{label: "📆 طلبات الشهر الماضي", title: "📆 إحصائيات الشهر الماضي", period: entities.PeriodLastMonth},
	{label: "📈 طلبات السنة الحالية", title: "📈 إحصائيات السنة الحالية", period: entities.PeriodThisYear},
	{label: "📉 طلبات السنة الماضية", title: "📉 إحصائيات السنة الماضية", period: entities.PeriodLastYear},
	{label: "📋 إجمالي الطلبات والدخل", title: "📋 إجمالي الإحصائيات", period: entities.PeriodAll},
}

var (
	mainMenu = entities.Menu{
		{statsButtons[0].label, statsButtons[1].label},
		{statsButtons[2].label, statsButtons[3].label},
		{statsButtons[4].label, statsButtons[5].label},
		{statsButtons[6].label},
		{btnRoster},
	}
	rosterMenu = entities.Menu{{btnAddCourier, btnDelCourier}, {btnBack}}
	backMenu   = entities.Menu{{btnBack}}
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateAddingName
	stateAddingPhone
	stateDeleting
)

type session struct {
	state sessionState
	name  string
}

// adminHandler runs the cashier chat conversation: stats lookups and the
// delivery roster. Sessions are per user and kept in memory.
type adminHandler struct {
	logger     *slog.Logger
	replier    Replier
	stats      StatsSummarizer
	roster     Roster
	restaurant string

	mu       sync.Mutex
	sessions map[int64]session
}

func NewAdminHandler(logger *slog.Logger, replier Replier, stats StatsSummarizer, roster Roster, restaurant string) *adminHandler {
	return &adminHandler{
		logger:     logger.With(slog.String("handler", "admin")),
		replier:    replier,
		stats:      stats,
		roster:     roster,
		restaurant: restaurant,
		sessions:   make(map[int64]session),
	}
}

func (h *adminHandler) Handle(ctx context.Context, chatID, userID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.sessions[userID]

	switch text {
	case cmdStart:
		delete(h.sessions, userID)
		h.reply(ctx, chatID, textReady, mainMenu)
		return
	case btnRoster:
		delete(h.sessions, userID)
		h.reply(ctx, chatID, textRosterMenu, rosterMenu)
		return
	case btnBack:
		delete(h.sessions, userID)
		if s.state == stateIdle {
			h.reply(ctx, chatID, textReady, mainMenu)
			return
		}
		h.reply(ctx, chatID, textRosterBack, rosterMenu)
		return
	case btnAddCourier:
		h.sessions[userID] = session{state: stateAddingName}
		h.reply(ctx, chatID, textAskName, backMenu)
		return
	case btnDelCourier:
		h.startDelete(ctx, chatID, userID)
		return
	}

	for _, b := range statsButtons {
		if text == b.label {
			delete(h.sessions, userID)
			h.sendStats(ctx, chatID, b)
			return
		}
	}

	switch s.state {
	case stateAddingName:
		h.sessions[userID] = session{state: stateAddingPhone, name: text}
		h.reply(ctx, chatID, textAskPhone, backMenu)
	case stateAddingPhone:
		h.addCourier(ctx, chatID, userID, s.name, text)
	case stateDeleting:
		h.deleteCourier(ctx, chatID, userID, text)
	default:
		h.logger.Debug("ignoring staff message", slog.Int64("user_id", userID))
	}
}

func (h *adminHandler) sendStats(ctx context.Context, chatID int64, b statsButton) {
	stats, err := h.stats.Summary(ctx, b.period)
	if err != nil {
		h.logger.Error("failed to get stats", slog.String("period", string(b.period)), slog.Any("error", err))
		h.reply(ctx, chatID, textStatsFailed, nil)
		return
	}
	h.reply(ctx, chatID, fmt.Sprintf("%s\n\n🔢 عدد الطلبات: %d\n💰 الدخل الكلي: %d ل.س", b.title, stats.Count, stats.Total), nil)
}

func (h *adminHandler) addCourier(ctx context.Context, chatID, userID int64, name, phone string) {
	p := entities.DeliveryPerson{Restaurant: h.restaurant, Name: name, Phone: phone}
	err := h.roster.Add(ctx, p)

	var verr validator.ValidationErrors
	switch {
	case err == nil:
		delete(h.sessions, userID)
		h.reply(ctx, chatID, fmt.Sprintf("✅ تم إضافة الدليفري:\n🧑‍💼 %s\n📞 %s", strings.TrimSpace(name), strings.TrimSpace(phone)), rosterMenu)
	case errors.As(err, &verr):
		h.reply(ctx, chatID, textInvalid, backMenu)
	case errors.Is(err, entities.ErrDeliveryPersonExists):
		delete(h.sessions, userID)
		h.reply(ctx, chatID, textExists, rosterMenu)
	default:
		h.logger.Error("failed to add delivery person", slog.Any("error", err))
		h.reply(ctx, chatID, textSaveFailed, backMenu)
	}
}

func (h *adminHandler) startDelete(ctx context.Context, chatID, userID int64) {
	people, err := h.roster.List(ctx, h.restaurant)
	if err != nil {
		h.logger.Error("failed to list delivery people", slog.Any("error", err))
		h.reply(ctx, chatID, textListFailed, rosterMenu)
		return
	}
	if len(people) == 0 {
		delete(h.sessions, userID)
		h.reply(ctx, chatID, textRosterEmpty, rosterMenu)
		return
	}

	menu := make(entities.Menu, 0, len(people)+1)
	for _, p := range people {
		menu = append(menu, []string{p.Name})
	}
	menu = append(menu, []string{btnBack})

	h.sessions[userID] = session{state: stateDeleting}
	h.reply(ctx, chatID, textChooseName, menu)
}

func (h *adminHandler) deleteCourier(ctx context.Context, chatID, userID int64, name string) {
	err := h.roster.Delete(ctx, h.restaurant, name)
	switch {
	case err == nil:
		delete(h.sessions, userID)
		h.reply(ctx, chatID, "✅ تم حذف الدليفري: "+name, rosterMenu)
	case errors.Is(err, entities.ErrDeliveryPersonNotFound):
		h.reply(ctx, chatID, textNotFound, nil)
	default:
		h.logger.Error("failed to delete delivery person", slog.Any("error", err))
		h.reply(ctx, chatID, textDelFailed, nil)
	}
}

func (h *adminHandler) reply(ctx context.Context, chatID int64, text string, menu entities.Menu) {
	if err := h.replier.Reply(ctx, chatID, text, menu); err != nil {
		h.logger.Error("failed to reply", slog.Int64("chat_id", chatID), slog.Any("error", err))
	}
}
