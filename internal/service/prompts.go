package service

import (
	"fmt"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
)

const (
	textNoLongerAvailable = "⚠️ هذا الطلب لم يعد متاحًا."
	textComplaintSent     = "📨 تم إرسال الشكوى وإلغاء الطلب. سيتواصل معكم فريق الدعم إذا لزم الأمر."

	labelAccept        = "✅ قبول الطلب"
	labelReject        = "❌ رفض الطلب"
	labelComplain      = "🚨 شكوى عن الزبون أو الطلب"
	labelConfirmReject = "✅ تأكيد رفض الطلب"
	labelBack          = "🔙 رجوع"
	labelReady         = "🚗 جاهز ليطلع"
	labelOver90        = "📌 أكثر من 90 دقيقة"
	labelSelected      = "✅ "
)

var reasonLabels = map[entities.ComplaintReason]string{
	entities.ReasonDelivery: "🚪 وصل الديليفري ولم يجد الزبون",
	entities.ReasonPhone:    "📞 رقم الهاتف غير صحيح",
	entities.ReasonLocation: "📍 معلومات الموقع غير دقيقة",
	entities.ReasonOther:    "❓ مشكلة أخرى",
}

var reasonTexts = map[entities.ComplaintReason]string{
	entities.ReasonDelivery: "🚪 وصل الديليفري ولم يجد الزبون",
	entities.ReasonPhone:    "📞 رقم الهاتف غير صحيح",
	entities.ReasonLocation: "📍 معلومات الموقع غير دقيقة",
	entities.ReasonOther:    "❓ شكوى أخرى من الكاشير",
}

func staffPrompt(o entities.Order, refreshed bool) entities.OutboundMessage {
	header := "🆕 *طلب جديد من القناة:*"
	if refreshed {
		header = "🆕 *طلب جديد محدث من القناة:*"
	}
	return entities.OutboundMessage{
		Text:     fmt.Sprintf("%s\n\n%s\n\n📌 معرف الطلب: `%s`", header, o.Details, o.ID),
		Markdown: true,
		Keyboard: promptKeyboard(o.ID),
	}
}

// refreshedPrompt resends the order with its location attached. Progress
// already made survives: a selected time keeps its keyboard with ready and a
// dispatched order gets no buttons. Any other state starts over from the
// three-button prompt.
func refreshedPrompt(o entities.Order) (entities.OutboundMessage, entities.OrderState) {
	msg := staffPrompt(o, true)
	switch o.State {
	case entities.StateTimeSelected:
		msg.Keyboard = timeKeyboard(o.ID, o.PrepTime)
		return msg, o.State
	case entities.StateDispatched:
		msg.Keyboard = nil
		return msg, o.State
	default:
		return msg, entities.StateStaffNotified
	}
}

func button(text string, kind entities.ActionKind, orderID string) entities.Button {
	return entities.Button{Text: text, Action: entities.Action{Kind: kind, OrderID: orderID}}
}

func promptKeyboard(orderID string) entities.Keyboard {
	return entities.Keyboard{
		{button(labelAccept, entities.ActionAccept, orderID)},
		{button(labelReject, entities.ActionReject, orderID)},
		{button(labelComplain, entities.ActionComplain, orderID)},
	}
}

// timeKeyboard lists every prep time. Once a time is selected it is marked
// and the ready action appears.
func timeKeyboard(orderID string, selected entities.PrepTime) entities.Keyboard {
	choices := append(append([]entities.PrepTime{}, entities.PrepTimes...), entities.PrepTimeOver90)

	kb := make(entities.Keyboard, 0, len(choices)+2)
	for _, p := range choices {
		text := fmt.Sprintf("%s دقيقة", p)
		if p == entities.PrepTimeOver90 {
			text = labelOver90
		}
		if p == selected {
			text = labelSelected + text
		}
		kb = append(kb, []entities.Button{{
			Text:   text,
			Action: entities.Action{Kind: entities.ActionTime, PrepTime: p, OrderID: orderID},
		}})
	}

	if selected != "" {
		kb = append(kb, []entities.Button{button(labelReady, entities.ActionReady, orderID)})
	}
	return append(kb, []entities.Button{button(labelBack, entities.ActionBack, orderID)})
}

func confirmRejectKeyboard(orderID string) entities.Keyboard {
	return entities.Keyboard{
		{button(labelConfirmReject, entities.ActionConfirmReject, orderID)},
		{button(labelBack, entities.ActionBack, orderID)},
	}
}

func complaintKeyboard(orderID string) entities.Keyboard {
	kb := make(entities.Keyboard, 0, len(entities.ComplaintReasons)+1)
	for _, r := range entities.ComplaintReasons {
		kb = append(kb, []entities.Button{{
			Text:   reasonLabels[r],
			Action: entities.Action{Kind: entities.ActionReport, Reason: r, OrderID: orderID},
		}})
	}
	return append(kb, []entities.Button{button(labelBack, entities.ActionBack, orderID)})
}

func prepTimeText(p entities.PrepTime) string {
	if p == entities.PrepTimeOver90 {
		return "أكثر من 90 دقيقة"
	}
	return fmt.Sprintf("%s دقيقة", p)
}

func markdown(format string, args ...any) entities.OutboundMessage {
	return entities.OutboundMessage{Text: fmt.Sprintf(format, args...), Markdown: true}
}

func plain(format string, args ...any) entities.OutboundMessage {
	return entities.OutboundMessage{Text: fmt.Sprintf(format, args...)}
}

func reminderMessage(text string) entities.OutboundMessage {
	return markdown("🔔 *تذكير من الزبون!*\n\n%s", text)
}

func timeLeftMessage(text string) entities.OutboundMessage {
	return markdown("⏳ *استفسار من الزبون:*\n\n%s", text)
}

func inKitchenMessage(orderID string, p entities.PrepTime) entities.OutboundMessage {
	return markdown("🔥 *الطلب عالنار بالمطبخ!* 🍽️\n\n📌 *معرف الطلب:* `%s`\n⏳ *مدة التحضير:* %s", orderID, prepTimeText(p))
}

func dispatchedMessage(orderID string) entities.OutboundMessage {
	return markdown("🚗 *طلبك جاهز وفي الطريق إليك!*\n\n📌 *معرف الطلب:* `%s`", orderID)
}

func persistenceWarning(orderID string) entities.OutboundMessage {
	return markdown("⚠️ تعذر تسجيل الطلب `%s` في الإحصائيات. أعد اختيار مدة التحضير لاحقًا.", orderID)
}

func rejectionMessage(orderID string) entities.OutboundMessage {
	return markdown("🚫 تم رفض الطلب.\n"+
		"📌 معرف الطلب: `%s`\n"+
		"📍 السبب: قد تكون معلومات المستخدم غير مكتملة أو غير واضحة.\n"+
		"يمكنك اختيار *تعديل معلوماتي* لتصحيحها.\n"+
		"أو ربما منطقتك لا تغطيها خدمة التوصيل.\n"+
		"جرب اختيار مطعم أقرب أو المحاولة لاحقًا إن كانت هناك مشكلة لدى المطعم.", orderID)
}

func complaintEscalationMessage(o entities.Order, r entities.ComplaintReason) entities.OutboundMessage {
	return markdown("📣 *شكوى من الكاشير على الطلب:*\n"+
		"📌 معرف الطلب: `%s`\n"+
		"📍 السبب: %s\n\n"+
		"📝 *تفاصيل الطلب:*\n\n%s", o.ID, reasonTexts[r], o.Details)
}

func complaintPublicMessage(orderID string, r entities.ComplaintReason) entities.OutboundMessage {
	return markdown("🚫 تم إلغاء الطلب بسبب شكوى الكاشير.\n"+
		"📌 معرف الطلب: `%s`\n"+
		"📍 السبب: %s", orderID, reasonTexts[r])
}

func deliveredRatingMessage(number int, stars string) entities.OutboundMessage {
	return plain("✅ الزبون استلم طلبه رقم %d وقام بتقييمه بـ %s", number, stars)
}

func reportedCancellationMessage(number int, orderID string) entities.OutboundMessage {
	return markdown("🚫 تم إلغاء الطلب رقم %d من قبل الزبون.\n"+
		"📌 معرف الطلب: `%s`\n"+
		"📍 السبب: تأخر المطعم وتم إنشاء تقرير بالمشكلة وسنتواصل مع الزبون ومعكم لنفهم سبب الإلغاء.\n\n"+
		"📞 يمكنكم التواصل مع الزبون عبر رقم الهاتف المرفق في الطلب.", number, orderID)
}

func standardCancellationMessage(number int, orderID string) entities.OutboundMessage {
	return markdown("🚫 تم إلغاء الطلب رقم %d من قبل الزبون.\n"+
		"📌 معرف الطلب: `%s`\n"+
		"📍 السبب: تردد الزبون وقرر الإلغاء.", number, orderID)
}
