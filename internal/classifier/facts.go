package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

// Facts are the billing fields recovered from an order's rendered details.
type Facts struct {
	OrderNumber int
	Restaurant  string
	TotalPrice  int64
}

// ExtractFacts never fails: missing fields fall back to 0 and the
// "unknown" restaurant label so a partially parseable order still reaches staff.
func ExtractFacts(details string) Facts {
	f := Facts{
		OrderNumber: OrderNumber(details),
		Restaurant:  unknownRestaurant,
	}

	if s, ok := firstMatch(totalPriceRe, details); ok {
		if v, err := strconv.ParseInt(strings.ReplaceAll(s, thousandsSeparator, ""), 10, 64); err == nil {
			f.TotalPrice = v
		}
	}

	if s, ok := firstMatch(restaurantRe, details); ok {
		if name := strings.Trim(s, restaurantTrimCutset); name != "" {
			f.Restaurant = name
		}
	}
	return f
}

// OrderNumber returns the public order number or 0.
func OrderNumber(details string) int {
	return atoi(orderNumberRe, details)
}

// LocationAnnotation is appended to order details once a location is known.
func LocationAnnotation() string {
	return locationAnnotation
}

func atoi(re *regexp.Regexp, text string) int {
	s, ok := firstMatch(re, text)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
