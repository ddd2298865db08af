package entities

// Event is one classified channel post. The set of implementations is closed.
type Event interface {
	eventName() string
}

func EventName(e Event) string {
	return e.eventName()
}

type NewOrder struct {
	OrderID   string
	RawText   string
	MessageID int
}

type LocationUpdate struct {
	Latitude  float64
	Longitude float64
}

type Reminder struct {
	Text string
}

type TimeLeftQuery struct {
	Text string
}

// RatingFeedback references the order only by its public number.
type RatingFeedback struct {
	OrderNumber int
}

type OrderDeliveredRating struct {
	OrderNumber int
	OrderID     string
	Stars       string
}

type ReportedCancellation struct {
	OrderNumber int
	OrderID     string
}

type StandardCancellation struct {
	OrderNumber int
	OrderID     string
}

func (NewOrder) eventName() string             { return "new_order" }
func (LocationUpdate) eventName() string       { return "location_update" }
func (Reminder) eventName() string             { return "reminder" }
func (TimeLeftQuery) eventName() string        { return "time_left_query" }
func (RatingFeedback) eventName() string       { return "rating_feedback" }
func (OrderDeliveredRating) eventName() string { return "order_delivered_rating" }
func (ReportedCancellation) eventName() string { return "reported_cancellation" }
func (StandardCancellation) eventName() string { return "standard_cancellation" }

// InboundMessage is a channel post as seen by the classifier.
type InboundMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	Location  *Location
}
