package domain

// Status lifecycle:
//
//	pendente → finalizado → finalizado_pago
//	cancelado is reachable from any non-terminal state
//
// finalizado_pago and cancelado are terminal: no transition leaves them,
// though re-saving finalizado_pago over itself is allowed (see CanTransition).

// IsValidStatus reports whether s is one of the four known status values
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusFinalized, StatusFinalizedPaid, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether moving from one status to another is legal.
// Same-state "transitions" into a finalized status are allowed: re-saving a
// finalized appointment re-fires the finalized hook, with no delta check.
func CanTransition(from, to AppointmentStatus) bool {
	if !IsValidStatus(to) {
		return false
	}

	switch from {
	case StatusPending:
		return to == StatusPending || to == StatusFinalized || to == StatusFinalizedPaid || to == StatusCancelled
	case StatusFinalized:
		return to == StatusFinalized || to == StatusFinalizedPaid || to == StatusCancelled
	case StatusFinalizedPaid:
		// Terminal, mas o re-save idempotente entra e dispara o hook de novo
		return to == StatusFinalizedPaid
	case StatusCancelled:
		// Terminal: nenhuma saída
		return false
	}
	return false
}

// StatusForPastPayment maps the submitted payment status of a past-type
// appointment to its lifecycle status: a pending payment finalizes the
// appointment with an outstanding amount, anything else closes it as paid.
func StatusForPastPayment(p PaymentStatus) AppointmentStatus {
	if p == PaymentPending {
		return StatusFinalized
	}
	return StatusFinalizedPaid
}

// IsValidPaymentStatus reports whether p is a known payment status
func IsValidPaymentStatus(p PaymentStatus) bool {
	return p == PaymentPaid || p == PaymentPending
}
