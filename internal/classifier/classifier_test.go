package classifier_test

import (
	"testing"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/classifier"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	testCases := []struct {
		name   string
		msg    entities.InboundMessage
		want   entities.Event
		wantOK bool
	}{
		{
			name:   "new order",
			msg:    entities.InboundMessage{Text: "معرف الطلب: ORD42", MessageID: 7},
			want:   entities.NewOrder{OrderID: "ORD42", RawText: "معرف الطلب: ORD42", MessageID: 7},
			wantOK: true,
		},
		{
			name:   "new order with markdown id",
			msg:    entities.InboundMessage{Text: "🧾 *رقم الطلب:* `15`\n📌 معرف الطلب: `a1B2`"},
			want:   entities.NewOrder{OrderID: "a1B2", RawText: "🧾 *رقم الطلب:* `15`\n📌 معرف الطلب: `a1B2`"},
			wantOK: true,
		},
		{
			name: "location",
			msg: entities.InboundMessage{
				Location: &entities.Location{Latitude: 33.5, Longitude: 36.3},
			},
			want:   entities.LocationUpdate{Latitude: 33.5, Longitude: 36.3},
			wantOK: true,
		},
		{
			name: "delivered rating wins over new order",
			msg: entities.InboundMessage{
				Text: "✅ الزبون استلم طلبه رقم 15 وقام بتقييمه بـ ⭐⭐⭐\n📌 معرف الطلب: ORD42",
			},
			want:   entities.OrderDeliveredRating{OrderNumber: 15, OrderID: "ORD42", Stars: "⭐⭐⭐"},
			wantOK: true,
		},
		{
			name: "delivered rating without stars uses default",
			msg: entities.InboundMessage{
				Text: "✅ الزبون استلم طلبه رقم 15 وقام بتقييمه\n📌 معرف الطلب: ORD42",
			},
			want:   entities.OrderDeliveredRating{OrderNumber: 15, OrderID: "ORD42", Stars: "⭐️"},
			wantOK: true,
		},
		{
			name:   "rating feedback by number only",
			msg:    entities.InboundMessage{Text: "⭐ تقييم جديد للطلب رقم 15"},
			want:   entities.RatingFeedback{OrderNumber: 15},
			wantOK: true,
		},
		{
			name: "standard cancellation",
			msg: entities.InboundMessage{
				Text: "🚫 تم إلغاء الطلب رقم 15\n📌 معرف الطلب: `ORD42`\n📍 السبب: تردد الزبون وقرر الإلغاء.",
			},
			want:   entities.StandardCancellation{OrderNumber: 15, OrderID: "ORD42"},
			wantOK: true,
		},
		{
			name: "reported cancellation",
			msg: entities.InboundMessage{
				Text: "🚫 تم إلغاء الطلب رقم: 15\n📌 معرف الطلب: ORD42\nتأخر المطعم وتم إنشاء تقرير بالمشكلة",
			},
			want:   entities.ReportedCancellation{OrderNumber: 15, OrderID: "ORD42"},
			wantOK: true,
		},
		{
			name:   "other cancellation notice is not a new order",
			msg:    entities.InboundMessage{Text: "🚫 تم إلغاء الطلب رقم 15\n📌 معرف الطلب: ORD42"},
			wantOK: false,
		},
		{
			name:   "cancellation without id is dropped",
			msg:    entities.InboundMessage{Text: "🚫 تم إلغاء الطلب رقم 15 تردد الزبون"},
			wantOK: false,
		},
		{
			name:   "reminder wins over new order",
			msg:    entities.InboundMessage{Text: "🔔 تذكير من الزبون\nمعرف الطلب: ORD42"},
			want:   entities.Reminder{Text: "🔔 تذكير من الزبون\nمعرف الطلب: ORD42"},
			wantOK: true,
		},
		{
			name:   "time left query",
			msg:    entities.InboundMessage{Text: "⏳ كم يتبقى على الطلب رقم 15؟"},
			want:   entities.TimeLeftQuery{Text: "⏳ كم يتبقى على الطلب رقم 15؟"},
			wantOK: true,
		},
		{
			name:   "own rejection notice",
			msg:    entities.InboundMessage{Text: "🚫 تم رفض الطلب.\n📌 معرف الطلب: `ORD42`\n📍 السبب: قد تكون معلومات المستخدم غير مكتملة"},
			wantOK: false,
		},
		{
			name:   "own kitchen notice",
			msg:    entities.InboundMessage{Text: "🔥 *الطلب عالنار بالمطبخ!* 🍽️\n\n📌 *معرف الطلب:* `ORD42`\n⏳ *مدة التحضير:* 15 دقيقة"},
			wantOK: false,
		},
		{
			name:   "own kitchen notice without markup",
			msg:    entities.InboundMessage{Text: "🔥 الطلب عالنار بالمطبخ! 🍽️\n\n📌 معرف الطلب: ORD42\n⏳ مدة التحضير: 15 دقيقة"},
			wantOK: false,
		},
		{
			name:   "own dispatched notice",
			msg:    entities.InboundMessage{Text: "🚗 *طلبك جاهز وفي الطريق إليك!*\n\n📌 *معرف الطلب:* `ORD42`"},
			wantOK: false,
		},
		{
			name:   "own complaint escalation",
			msg:    entities.InboundMessage{Text: "📣 *شكوى من الكاشير على الطلب:*\n📌 معرف الطلب: `ORD42`\n📍 السبب: 📞 رقم الهاتف غير صحيح"},
			wantOK: false,
		},
		{
			name:   "own complaint cancellation",
			msg:    entities.InboundMessage{Text: "🚫 تم إلغاء الطلب بسبب شكوى الكاشير.\n📌 معرف الطلب: `ORD42`"},
			wantOK: false,
		},
		{
			name:   "no match",
			msg:    entities.InboundMessage{Text: "مرحبا"},
			wantOK: false,
		},
		{
			name:   "empty post",
			msg:    entities.InboundMessage{},
			wantOK: false,
		},
	}

	c := classifier.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.Classify(tc.msg)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRules_Priority(t *testing.T) {
	want := []string{
		"location",
		"own_notice",
		"delivered_rating",
		"rating_feedback",
		"standard_cancellation",
		"reported_cancellation",
		"cancellation_notice",
		"reminder",
		"time_left",
		"new_order",
	}

	rules := classifier.Rules()
	got := make([]string, 0, len(rules))
	for _, r := range rules {
		got = append(got, r.Name)
	}
	assert.Equal(t, want, got)
}

func TestExtractFacts(t *testing.T) {
	testCases := []struct {
		name    string
		details string
		want    classifier.Facts
	}{
		{
			name:    "all fields",
			details: "🧾 رقم الطلب: 15\nالمطعم: كبابجي\nالمجموع الكلي: 50,000 ل.س\nمعرف الطلب: ORD42",
			want:    classifier.Facts{OrderNumber: 15, Restaurant: "كبابجي", TotalPrice: 50000},
		},
		{
			name:    "markdown decorations",
			details: "*رقم الطلب:* `15`\n*المطعم:* كبابجي\n*المجموع الكلي:* 50000",
			want:    classifier.Facts{OrderNumber: 15, Restaurant: "كبابجي", TotalPrice: 50000},
		},
		{
			name:    "missing fields fall back to defaults",
			details: "معرف الطلب: ORD42",
			want:    classifier.Facts{OrderNumber: 0, Restaurant: "غير معروف", TotalPrice: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.ExtractFacts(tc.details))
		})
	}
}
