package classifier

import (
	"regexp"
	"strings"
)

// Маркеры сообщений канала. Тексты приходят от бота-агрегатора заказов на арабском.
const (
	markerDelivered      = "استلم طلبه رقم"
	markerRated          = "بتقييمه"
	markerRating         = "تقييم"
	markerHesitated      = "تردد الزبون"
	markerCancelNotice   = "🚫 تم إلغاء الطلب رقم"
	markerReminder       = "تذكير من الزبون"
	unknownRestaurant    = "غير معروف"
	defaultStars         = "⭐️"
	locationAnnotation   = "\n\n📍 *تم إرفاق الموقع الجغرافي*"
	thousandsSeparator   = ","
	restaurantTrimCutset = " *`"
)

// Начала уведомлений, которые бот сам публикует в канал и в чат жалоб.
// Сравниваются с текстом без разметки: Telegram возвращает пост без * и `.
var ownNoticePrefixes = []string{
	"🚫 تم رفض الطلب",
	"🔥 الطلب عالنار",
	"🚗 طلبك جاهز",
	"📣 شكوى من الكاشير",
	"🚫 تم إلغاء الطلب بسبب",
}

var markdownStripper = strings.NewReplacer("*", "", "`", "")

var (
	orderIDRe         = regexp.MustCompile("معرف الطلب[:*\\s]*`?([\\p{L}\\p{N}_]+)")
	deliveredNumberRe = regexp.MustCompile(`طلبه رقم\s*(\d+)`)
	ratingNumberRe    = regexp.MustCompile(`رقم\s*(\d+)`)
	cancelNumberRe    = regexp.MustCompile(`إلغاء الطلب رقم[:\s]*(\d+)`)
	starsRe           = regexp.MustCompile(`تقييمه بـ\s*((?:⭐\x{FE0F}?)+)`)
	reportedCancelRe  = regexp.MustCompile(`(?s)تأخر المطعم.*تم إنشاء تقرير`)
	timeLeftRe        = regexp.MustCompile(`(?s)كم يتبقى.*الطلب رقم`)

	orderNumberRe = regexp.MustCompile("رقم الطلب[:*\\s`]*(\\d+)")
	totalPriceRe  = regexp.MustCompile("المجموع الكلي[:*\\s`]*([0-9][0-9,]*)")
	restaurantRe  = regexp.MustCompile(`المطعم[:*\s]*(.+)`)
)

// firstMatch returns the first capture group of re in text.
func firstMatch(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
