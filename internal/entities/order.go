package entities

import (
	"errors"
	"time"
)

type OrderState int

const (
	StateStaffNotified OrderState = iota
	StateAwaitingTimeSelection
	StateAwaitingRejectConfirm
	StateAwaitingComplaintReason
	StateTimeSelected
	StateDispatched
)

func (s OrderState) String() string {
	switch s {
	case StateStaffNotified:
		return "staff_notified"
	case StateAwaitingTimeSelection:
		return "awaiting_time_selection"
	case StateAwaitingRejectConfirm:
		return "awaiting_reject_confirm"
	case StateAwaitingComplaintReason:
		return "awaiting_complaint_reason"
	case StateTimeSelected:
		return "time_selected"
	case StateDispatched:
		return "dispatched"
	default:
		return "unknown"
	}
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// Order is the live staff-facing conversation state of one order.
// Details is append-only for the lifetime of the record.
type Order struct {
	ID     string
	Number int

	Details string

	ChannelMessageID int
	// Ноль означает, что сообщение кассиру так и не было отправлено
	StaffMessageID int

	Location *Location
	State    OrderState
	PrepTime PrepTime

	CreatedAt time.Time
}

// OrderLogEntry is written once, when staff picks a prep time.
type OrderLogEntry struct {
	OrderID     string
	OrderNumber int
	Restaurant  string
	TotalPrice  int64
	CreatedAt   time.Time
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderExists   = errors.New("order already exists")
	ErrNoOpenOrders  = errors.New("no open orders")
	ErrInvalidAction = errors.New("invalid callback action")
)
