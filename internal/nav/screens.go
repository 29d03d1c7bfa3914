package nav

// Screen identifies one application screen. The numeric values are part of
// the navigation history and must stay stable.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenAddCard
	ScreenSettings
	ScreenCardDetail
	ScreenTemplates
	ScreenAccount
	ScreenLogin
	ScreenSignUp
	ScreenRecovery
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenAddCard:
		return "add-card"
	case ScreenSettings:
		return "settings"
	case ScreenCardDetail:
		return "card-detail"
	case ScreenTemplates:
		return "templates"
	case ScreenAccount:
		return "account"
	case ScreenLogin:
		return "login"
	case ScreenSignUp:
		return "sign-up"
	case ScreenRecovery:
		return "recovery"
	}
	return "unknown"
}
