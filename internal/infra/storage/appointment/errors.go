package appointment

import "errors"

var (
	// ErrAppointmentNotFound é retornado quando o agendamento não existe
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrEncodeServices é retornado quando o snapshot de serviços não pode ser serializado
	ErrEncodeServices = errors.New("appointment.repository: failed to encode services snapshot")
)
