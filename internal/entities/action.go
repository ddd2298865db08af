package entities

import (
	"fmt"
	"slices"
	"strings"
)

type ActionKind string

const (
	ActionAccept        ActionKind = "accept"
	ActionReject        ActionKind = "reject"
	ActionConfirmReject ActionKind = "confirmreject"
	ActionBack          ActionKind = "back"
	ActionComplain      ActionKind = "complain"
	ActionReport        ActionKind = "report"
	ActionTime          ActionKind = "time"
	ActionReady         ActionKind = "ready"
)

type PrepTime string

const PrepTimeOver90 PrepTime = "90+"

// PrepTimes are the fixed choices offered after accept, in display order.
var PrepTimes = []PrepTime{"5", "10", "15", "20", "25", "30", "35", "40", "45", "50", "60", "75", "90"}

func (p PrepTime) Valid() bool {
	return p == PrepTimeOver90 || slices.Contains(PrepTimes, p)
}

type ComplaintReason string

const (
	ReasonDelivery ComplaintReason = "delivery"
	ReasonPhone    ComplaintReason = "phone"
	ReasonLocation ComplaintReason = "location"
	ReasonOther    ComplaintReason = "other"
)

var ComplaintReasons = []ComplaintReason{ReasonDelivery, ReasonPhone, ReasonLocation, ReasonOther}

// Action is a parsed inline-button payload. PrepTime is set only for
// ActionTime and Reason only for ActionReport.
type Action struct {
	Kind     ActionKind
	PrepTime PrepTime
	Reason   ComplaintReason
	OrderID  string
}

// Encode renders the callback data string: <action>_<param...>_<order_id>.
// Telegram limits callback data to 64 bytes, so order ids must stay short.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionTime:
		return fmt.Sprintf("%s_%s_%s", a.Kind, a.PrepTime, a.OrderID)
	case ActionReport:
		return fmt.Sprintf("%s_%s_%s", a.Kind, a.Reason, a.OrderID)
	default:
		return fmt.Sprintf("%s_%s", a.Kind, a.OrderID)
	}
}

// ParseAction is the inverse of Encode. The order id is whatever remains
// after the known leading tokens, so ids may contain "_" as long as they do
// not start with a token that collides with a parameter.
func ParseAction(data string) (Action, error) {
	kind, rest, ok := strings.Cut(data, "_")
	if !ok || rest == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, data)
	}

	a := Action{Kind: ActionKind(kind)}
	switch a.Kind {
	case ActionAccept, ActionReject, ActionConfirmReject, ActionBack, ActionComplain, ActionReady:
		a.OrderID = rest

	case ActionTime:
		param, id, ok := strings.Cut(rest, "_")
		if !ok || id == "" || !PrepTime(param).Valid() {
			return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, data)
		}
		a.PrepTime, a.OrderID = PrepTime(param), id

	case ActionReport:
		param, id, ok := strings.Cut(rest, "_")
		if !ok || id == "" || !slices.Contains(ComplaintReasons, ComplaintReason(param)) {
			return Action{}, fmt.Errorf("%w: %q", ErrInvalidAction, data)
		}
		a.Reason, a.OrderID = ComplaintReason(param), id

	default:
		return Action{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, kind)
	}
	return a, nil
}

// ButtonPress is a callback query after the payload has been parsed.
type ButtonPress struct {
	CallbackID string
	MessageID  int
	Action     Action
}
