package handler

import (
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Order открытый заказ, ожидающий действий кассира
type Order struct {
	OrderID        string    `json:"order_id"`
	OrderNumber    int       `json:"order_number,omitempty"`
	State          string    `json:"state"`
	PrepTime       string    `json:"prep_time,omitempty"`
	StaffMessageID int       `json:"staff_message_id,omitempty"`
	Location       *Location `json:"location,omitempty"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"created_at"`
}

// Location координаты, присланные в канал
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderLog запись журнала заказов, используемая в статистике
type OrderLog struct {
	OrderID     string    `json:"order_id"`
	OrderNumber int       `json:"order_number"`
	Restaurant  string    `json:"restaurant"`
	TotalPrice  int64     `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats количество заказов и выручка за период
type Stats struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
	Total  int64  `json:"total"`
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		OrderID:        o.ID,
		OrderNumber:    o.Number,
		State:          o.State.String(),
		PrepTime:       string(o.PrepTime),
		StaffMessageID: o.StaffMessageID,
		Details:        o.Details,
		CreatedAt:      o.CreatedAt,
	}
	if o.Location != nil {
		res.Location = &Location{Latitude: o.Location.Latitude, Longitude: o.Location.Longitude}
	}
	return res
}

func OrderLogEntityToJSON(e entities.OrderLogEntry) OrderLog {
	return OrderLog{
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		Restaurant:  e.Restaurant,
		TotalPrice:  e.TotalPrice,
		CreatedAt:   e.CreatedAt,
	}
}

func StatsEntityToJSON(period entities.Period, s entities.Stats) Stats {
	return Stats{Period: string(period), Count: s.Count, Total: s.Total}
}

// InboundFromTelegram keeps only what the classifier looks at.
func InboundFromTelegram(m *tgbotapi.Message) entities.InboundMessage {
	res := entities.InboundMessage{MessageID: m.MessageID, Text: m.Text}
	if res.Text == "" {
		res.Text = m.Caption
	}
	if m.Chat != nil {
		res.ChatID = m.Chat.ID
	}
	if m.Location != nil {
		res.Location = &entities.Location{Latitude: m.Location.Latitude, Longitude: m.Location.Longitude}
	}
	return res
}
