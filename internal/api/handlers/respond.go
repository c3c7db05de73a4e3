// Package handlers reúne os helpers compartilhados pelos handlers HTTP:
// decodificação de JSON e respostas de erro padronizadas.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

const msgInternalError = "erro interno do servidor"

// ErrorResponse corpo padrão das respostas de erro
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse um erro de campo da validação
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse corpo das rejeições de validação
type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields"`
}

// DecodeJSON decodifica o corpo da requisição rejeitando campos desconhecidos
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON escreve a resposta com o status informado
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError escreve uma resposta de erro com a mensagem informada
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest escreve 400 com a mensagem informada
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized escreve 401 com a mensagem informada
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden escreve 403 com a mensagem informada
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound escreve 404 com a mensagem informada
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError escreve 500 com a mensagem padrão
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError escreve 422 com a lista de erros de campo quando o
// erro é uma rejeição de validação; devolve false caso contrário
func RespondValidationError(w http.ResponseWriter, err error, message string) bool {
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	fields := make([]FieldErrorResponse, len(validationErr.Fields))
	for i, fe := range validationErr.Fields {
		fields[i] = FieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}

	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  message,
		Fields: fields,
	})
	return true
}
