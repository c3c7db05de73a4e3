package ptr

// Ptr devolve um ponteiro para o valor recebido.
// Útil para preencher campos opcionais em filtros e requests.
func Ptr[T any](v T) *T {
	return &v
}
