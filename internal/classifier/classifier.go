package classifier

import (
	"strings"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
)

// Rule pairs a predicate with the constructor of the event it produces.
// The first rule whose Match returns true owns the message: if its Build
// fails the message is dropped, later rules are not tried.
type Rule struct {
	Name  string
	Match func(msg entities.InboundMessage) bool
	Build func(msg entities.InboundMessage) (entities.Event, bool)
}

type Classifier struct {
	rules []Rule
}

func New() *Classifier {
	return &Classifier{rules: Rules()}
}

// Classify returns the event for msg, or false when no rule produced one.
func (c *Classifier) Classify(msg entities.InboundMessage) (entities.Event, bool) {
	for _, r := range c.rules {
		if r.Match(msg) {
			return r.Build(msg)
		}
	}
	return nil, false
}

// Rules returns the rule list in priority order. The bot's own notices are
// dropped first. Completion and cancellation shapes come before new_order
// because their texts also carry an order id.
func Rules() []Rule {
	return []Rule{
		{Name: "location", Match: isLocation, Build: buildLocation},
		{Name: "own_notice", Match: isOwnNotice, Build: drop},
		{Name: "delivered_rating", Match: isDeliveredRating, Build: buildDeliveredRating},
		{Name: "rating_feedback", Match: isRatingFeedback, Build: buildRatingFeedback},
		{Name: "standard_cancellation", Match: isStandardCancellation, Build: buildStandardCancellation},
		{Name: "reported_cancellation", Match: isReportedCancellation, Build: buildReportedCancellation},
		{Name: "cancellation_notice", Match: isCancellationNotice, Build: drop},
		{Name: "reminder", Match: isReminder, Build: buildReminder},
		{Name: "time_left", Match: isTimeLeft, Build: buildTimeLeft},
		{Name: "new_order", Match: isNewOrder, Build: buildNewOrder},
	}
}

func isLocation(msg entities.InboundMessage) bool {
	return msg.Location != nil
}

func buildLocation(msg entities.InboundMessage) (entities.Event, bool) {
	return entities.LocationUpdate{Latitude: msg.Location.Latitude, Longitude: msg.Location.Longitude}, true
}

func isOwnNotice(msg entities.InboundMessage) bool {
	text := markdownStripper.Replace(strings.TrimSpace(msg.Text))
	for _, p := range ownNoticePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

func isDeliveredRating(msg entities.InboundMessage) bool {
	return strings.Contains(msg.Text, markerDelivered) &&
		strings.Contains(msg.Text, markerRated) &&
		orderIDRe.MatchString(msg.Text)
}

func buildDeliveredRating(msg entities.InboundMessage) (entities.Event, bool) {
	id, _ := firstMatch(orderIDRe, msg.Text)
	stars, ok := firstMatch(starsRe, msg.Text)
	if !ok {
		stars = defaultStars
	}
	return entities.OrderDeliveredRating{
		OrderNumber: atoi(deliveredNumberRe, msg.Text),
		OrderID:     id,
		Stars:       stars,
	}, true
}

// Rating without an order id: the order can only be found by its number.
func isRatingFeedback(msg entities.InboundMessage) bool {
	return strings.Contains(msg.Text, markerRating) &&
		!orderIDRe.MatchString(msg.Text) &&
		ratingNumberRe.MatchString(msg.Text)
}

func buildRatingFeedback(msg entities.InboundMessage) (entities.Event, bool) {
	n := atoi(ratingNumberRe, msg.Text)
	if n == 0 {
		return nil, false
	}
	return entities.RatingFeedback{OrderNumber: n}, true
}

func isStandardCancellation(msg entities.InboundMessage) bool {
	return strings.Contains(msg.Text, markerHesitated)
}

func buildStandardCancellation(msg entities.InboundMessage) (entities.Event, bool) {
	id, ok := firstMatch(orderIDRe, msg.Text)
	if !ok {
		return nil, false
	}
	return entities.StandardCancellation{OrderNumber: atoi(cancelNumberRe, msg.Text), OrderID: id}, true
}

func isReportedCancellation(msg entities.InboundMessage) bool {
	return reportedCancelRe.MatchString(msg.Text)
}

func buildReportedCancellation(msg entities.InboundMessage) (entities.Event, bool) {
	id, ok := firstMatch(orderIDRe, msg.Text)
	if !ok {
		return nil, false
	}
	return entities.ReportedCancellation{OrderNumber: atoi(cancelNumberRe, msg.Text), OrderID: id}, true
}

func isCancellationNotice(msg entities.InboundMessage) bool {
	return strings.HasPrefix(msg.Text, markerCancelNotice)
}

func drop(entities.InboundMessage) (entities.Event, bool) {
	return nil, false
}

func isReminder(msg entities.InboundMessage) bool {
	return strings.Contains(msg.Text, markerReminder)
}

func buildReminder(msg entities.InboundMessage) (entities.Event, bool) {
	return entities.Reminder{Text: msg.Text}, true
}

func isTimeLeft(msg entities.InboundMessage) bool {
	return timeLeftRe.MatchString(msg.Text)
}

func buildTimeLeft(msg entities.InboundMessage) (entities.Event, bool) {
	return entities.TimeLeftQuery{Text: msg.Text}, true
}

// isNewOrder repeats the completion and cancellation exclusions so that the
// rule stays correct even if it is evaluated on its own.
func isNewOrder(msg entities.InboundMessage) bool {
	if strings.Contains(msg.Text, markerDelivered) && strings.Contains(msg.Text, markerRated) {
		return false
	}
	if strings.HasPrefix(msg.Text, markerCancelNotice) {
		return false
	}
	return orderIDRe.MatchString(msg.Text)
}

func buildNewOrder(msg entities.InboundMessage) (entities.Event, bool) {
	id, ok := firstMatch(orderIDRe, msg.Text)
	if !ok {
		return nil, false
	}
	return entities.NewOrder{OrderID: id, RawText: msg.Text, MessageID: msg.MessageID}, true
}
