package repo

import (
	"time"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
)

type OrderLog struct {
	ID          int64     `db:"id"`
	OrderID     string    `db:"order_id"`
	OrderNumber int       `db:"order_number"`
	Restaurant  string    `db:"restaurant"`
	TotalPrice  int64     `db:"total_price"`
	CreatedAt   time.Time `db:"created_at"`
}

type Stats struct {
	Count int64 `db:"count"`
	Total int64 `db:"total"`
}

type DeliveryPerson struct {
	ID         int64  `db:"id"`
	Restaurant string `db:"restaurant"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
}

func OrderLogToEntity(o OrderLog) entities.OrderLogEntry {
	return entities.OrderLogEntry{
		OrderID:     o.OrderID,
		OrderNumber: o.OrderNumber,
		Restaurant:  o.Restaurant,
		TotalPrice:  o.TotalPrice,
		CreatedAt:   o.CreatedAt,
	}
}

func StatsToEntity(s Stats) entities.Stats {
	return entities.Stats{Count: s.Count, Total: s.Total}
}

func DeliveryPersonToEntity(p DeliveryPerson) entities.DeliveryPerson {
	return entities.DeliveryPerson{
		Restaurant: p.Restaurant,
		Name:       p.Name,
		Phone:      p.Phone,
	}
}
