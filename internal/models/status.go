package models

// StatusDisplayInfo contains display information for a status badge
type StatusDisplayInfo struct {
	DisplayName string
	BgColor     string
	TextColor   string
	BorderColor string
}

var (
	green  = StatusDisplayInfo{BgColor: "#E6FFE6", TextColor: "#006600", BorderColor: "#28a745"}
	yellow = StatusDisplayInfo{BgColor: "#FFF9E6", TextColor: "#8B6914", BorderColor: "#FFA500"}
	red    = StatusDisplayInfo{BgColor: "#FFE6E6", TextColor: "#CC0000", BorderColor: "#dc3545"}
	gray   = StatusDisplayInfo{BgColor: "#F5F5F5", TextColor: "#666", BorderColor: "#8C8C8C"}
	blue   = StatusDisplayInfo{BgColor: "#E6F3FF", TextColor: "#0066CC", BorderColor: "#4EC6E0"}
	purple = StatusDisplayInfo{BgColor: "#F3E6FF", TextColor: "#6B21A8", BorderColor: "#A855F7"}
	indigo = StatusDisplayInfo{BgColor: "#E8EAFF", TextColor: "#3730A3", BorderColor: "#6366F1"}
)

func badge(base StatusDisplayInfo, label string) StatusDisplayInfo {
	base.DisplayName = label
	return base
}

// Payment and student statuses share the key "pending" but not the label, so each
// family has its own table.
var (
	paymentStatusInfo = map[PaymentStatus]StatusDisplayInfo{
		PaymentPaid:    badge(green, "Pago"),
		PaymentPending: badge(yellow, "A Vencer"),
		PaymentOverdue: badge(red, "Em Atraso"),
	}
	studentStatusInfo = map[StudentStatus]StatusDisplayInfo{
		StudentActive:   badge(green, "Ativo"),
		StudentInactive: badge(gray, "Inativo"),
		StudentPending:  badge(yellow, "Pendente"),
	}
	eventTypeInfo = map[EventType]StatusDisplayInfo{
		EventTraining:   badge(blue, "Treino"),
		EventGame:       badge(red, "Jogo"),
		EventEvaluation: badge(purple, "Avaliação"),
		EventSpecial:    badge(yellow, "Evento Especial"),
		EventMeeting:    badge(indigo, "Reunião"),
	}
)

func (s PaymentStatus) Display() StatusDisplayInfo {
	if info, ok := paymentStatusInfo[s]; ok {
		return info
	}
	return badge(gray, string(s))
}

func (s StudentStatus) Display() StatusDisplayInfo {
	if info, ok := studentStatusInfo[s]; ok {
		return info
	}
	return badge(gray, string(s))
}

func (t EventType) Display() StatusDisplayInfo {
	if info, ok := eventTypeInfo[t]; ok {
		return info
	}
	return badge(gray, string(t))
}

// ActiveDisplay returns the badge for an active flag.
func ActiveDisplay(active bool) StatusDisplayInfo {
	if active {
		return StudentActive.Display()
	}
	return StudentInactive.Display()
}
