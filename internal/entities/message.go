package entities

type Audience int

const (
	AudienceStaff Audience = iota
	AudiencePublic
	AudienceEscalation
)

func (a Audience) String() string {
	switch a {
	case AudienceStaff:
		return "staff"
	case AudiencePublic:
		return "public"
	case AudienceEscalation:
		return "escalation"
	default:
		return "unknown"
	}
}

type Button struct {
	Text   string
	Action Action
}

// Keyboard is an inline keyboard, one slice per row. A nil Keyboard clears
// the buttons of an existing message.
type Keyboard [][]Button

type OutboundMessage struct {
	Text     string
	Markdown bool
	Keyboard Keyboard
}

// Menu is a reply keyboard shown under the input field of a staff chat.
type Menu [][]string
