package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal informa se o status não admite mais transições.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentCash            PaymentMethod = "cash"
	PaymentCard            PaymentMethod = "card"
	PaymentInstantTransfer PaymentMethod = "instant-transfer"
	PaymentBankTransfer    PaymentMethod = "bank-transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentInstantTransfer, PaymentBankTransfer:
		return PaymentMethod(s), nil
	}
	return "", &ValidationError{Field: "payment_method", Reason: "unknown value " + s}
}

// ===============================
// Creation Channel
// ===============================

type Channel string

const (
	ChannelManual   Channel = "manual"
	ChannelExternal Channel = "external"
)

// ===============================
// Transition rules
// ===============================

// CanStart: só um agendamento ainda não iniciado pode entrar em atendimento.
func CanStart(current Status) error {
	if current != StatusScheduled {
		return &InvalidTransitionError{From: current, To: StatusInProgress}
	}
	return nil
}

// CanCancel: cancelável enquanto não finalizado.
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusInProgress {
		return &InvalidTransitionError{From: current, To: StatusCancelled}
	}
	return nil
}

// CanComplete: conclusão exige atendimento iniciado. Concluir direto de
// "scheduled" é rejeitado: o chamador deve passar por Start.
func CanComplete(current Status) error {
	if current != StatusInProgress {
		return &InvalidTransitionError{From: current, To: StatusCompleted}
	}
	return nil
}
