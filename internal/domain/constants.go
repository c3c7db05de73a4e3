package domain

// Recurrence cadence: one cycle generates 4 weekly or 2 biweekly occurrences
// per pet.
const (
	WeeklyIntervalDays = 7
	WeeklyOccurrences  = 4

	BiweeklyIntervalDays = 14
	BiweeklyOccurrences  = 2
)

// Default services snapshotted into every subscription occurrence
const (
	DefaultServiceBath      = "banho simples"
	DefaultServiceHydration = "hidratação"
)

// LedgerCategory é a categoria padrão dos lançamentos de assinatura no caixa
const LedgerCategory = "banho_tosa"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxNotesLength limita o tamanho das observações de um agendamento
const MaxNotesLength = 500

// TerminalStatuses lista os status que encerram o ciclo de vida.
// Usada para excluir agendamentos encerrados da agenda operacional.
var TerminalStatuses = []AppointmentStatus{
	StatusFinalizedPaid,
	StatusCancelled,
}
