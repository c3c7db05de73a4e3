package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pendente para finalizado", StatusPending, StatusFinalized, true},
		{"pendente para finalizado_pago", StatusPending, StatusFinalizedPaid, true},
		{"pendente para cancelado", StatusPending, StatusCancelled, true},
		{"pendente para pendente", StatusPending, StatusPending, true},
		{"finalizado para finalizado_pago", StatusFinalized, StatusFinalizedPaid, true},
		{"finalizado para cancelado", StatusFinalized, StatusCancelled, true},
		{"finalizado salvo de novo", StatusFinalized, StatusFinalized, true},
		{"finalizado nao regride para pendente", StatusFinalized, StatusPending, false},
		{"finalizado_pago e terminal", StatusFinalizedPaid, StatusPending, false},
		{"finalizado_pago nao regride para finalizado", StatusFinalizedPaid, StatusFinalized, false},
		{"finalizado_pago salvo de novo", StatusFinalizedPaid, StatusFinalizedPaid, true},
		{"cancelado nao se repete", StatusCancelled, StatusCancelled, false},
		{"cancelado e terminal", StatusCancelled, StatusFinalized, false},
		{"cancelado nao volta", StatusCancelled, StatusPending, false},
		{"status desconhecido e rejeitado", StatusPending, AppointmentStatus("desconhecido"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusForPastPayment(t *testing.T) {
	assert.Equal(t, StatusFinalized, StatusForPastPayment(PaymentPending))
	assert.Equal(t, StatusFinalizedPaid, StatusForPastPayment(PaymentPaid))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusFinalized, StatusFinalizedPaid, StatusCancelled} {
		assert.True(t, IsValidStatus(s), "status %s", s)
	}
	assert.False(t, IsValidStatus(AppointmentStatus("agendado")))
	assert.False(t, IsValidStatus(AppointmentStatus("")))
}
