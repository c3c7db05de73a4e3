// Package audit grava eventos estruturados de auditoria. Hoje o único
// produtor é a validação de agendamentos, que registra as submissões
// rejeitadas com os valores ofensivos e o usuário que tentou.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
	"github.com/petmimo/PTG-AgendaService/pkg/psqlbuilder"
)

// EventValidationRejected identifica uma submissão rejeitada pela validação
const EventValidationRejected = "appointment_validation_rejected"

// Payload é o corpo livre do evento, serializado como JSON
type Payload map[string]interface{}

// Writer grava eventos de auditoria no banco
type Writer struct {
	db  dbmetrics.DBExecutor
	now func() time.Time
}

// NewWriter cria um writer de auditoria
func NewWriter(db dbmetrics.DBExecutor) *Writer {
	return &Writer{db: db, now: time.Now}
}

// Append grava um evento. actorID é o usuário que executou a ação.
func (w *Writer) Append(ctx context.Context, eventType string, actorID int64, payload Payload) error {
	if payload == nil {
		payload = Payload{}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("audit: marshal payload: %w", err)
	}

	executor := dbmetrics.GetExecutor(ctx, w.db)

	query, args, err := psqlbuilder.Insert("audit_events").
		Columns("id", "type", "actor_id", "payload", "created_at").
		Values(uuid.NewString(), eventType, actorID, data, w.now().UTC()).
		ToSql()

	if err != nil {
		return fmt.Errorf("audit: build insert query: %w", err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("audit: execute insert: %w", err)
	}

	return nil
}
