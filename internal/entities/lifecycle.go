package entities

import "time"

type LifecycleEventType string

const (
	LifecycleCreated      LifecycleEventType = "order_created"
	LifecycleLocated      LifecycleEventType = "location_attached"
	LifecycleTimeSelected LifecycleEventType = "time_selected"
	LifecycleDispatched   LifecycleEventType = "dispatched"
	LifecycleRejected     LifecycleEventType = "rejected"
	LifecycleComplaint    LifecycleEventType = "complaint_filed"
	LifecycleRated        LifecycleEventType = "rated"
	LifecycleCancelled    LifecycleEventType = "cancelled"
)

// LifecycleEvent is published to the event stream on every transition.
type LifecycleEvent struct {
	ID          string             `json:"id"`
	Type        LifecycleEventType `json:"type"`
	OrderID     string             `json:"order_id"`
	OrderNumber int                `json:"order_number,omitempty"`
	Detail      string             `json:"detail,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}
