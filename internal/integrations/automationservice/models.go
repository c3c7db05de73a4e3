package automationservice

// hookEvent é o payload enviado para o serviço de automação.
// O serviço de automação compõe e dispara as mensagens (WhatsApp/e-mail);
// este cliente só entrega o fato.
type hookEvent struct {
	AppointmentID   int64  `json:"appointment_id"`
	AppointmentType string `json:"appointment_type,omitempty"`
}
