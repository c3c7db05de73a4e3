package update_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pendente | finalizado | finalizado_pago | cancelado
}
