package create_subscription

import (
	"strconv"
	"strings"
	"time"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// validateSubmission normaliza e valida a submissão de assinatura.
// Mesmo contrato do fluxo de agendamento: request completa ou lista de
// erros de campo, sem objeto parcial.
func validateSubmission(sub *Submission, now time.Time) (*ValidatedRequest, []domain.FieldError) {
	var fieldErrors []domain.FieldError
	req := &ValidatedRequest{}

	clientID, err := strconv.ParseInt(strings.TrimSpace(sub.ClientID), 10, 64)
	if err != nil || clientID <= 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "client_id", Message: "cliente inválido"})
	} else {
		req.ClientID = clientID
	}

	req.PetIDs = domain.ParseIDList(sub.PetIDs)
	if len(req.PetIDs) == 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "pet_ids", Message: "selecione ao menos um pet"})
	}

	frequency := domain.Frequency(strings.TrimSpace(sub.Frequency))
	if !frequency.IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "frequency", Message: "frequência inválida (semanal ou quinzenal)"})
	}
	req.Frequency = frequency

	startDate, dateErr := time.Parse(domain.DateFormat, strings.TrimSpace(sub.StartDate))
	switch {
	case sub.StartDate == "":
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "start_date", Message: "data de início é obrigatória"})
	case dateErr != nil:
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "start_date", Message: "data inválida, use o formato AAAA-MM-DD"})
	default:
		// Assinatura começa hoje ou no futuro
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if startDate.Before(today) {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: "start_date", Message: "a data de início não pode estar no passado"})
		} else {
			req.StartDate = startDate
		}
	}

	if sub.StartTime == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "start_time", Message: "horário é obrigatório"})
	} else if ts, tErr := types.NewTimeStringFromString(strings.TrimSpace(sub.StartTime)); tErr != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "start_time", Message: "horário inválido, use o formato HH:MM"})
	} else {
		req.StartTime = ts
	}

	// Tosa: quando habilitada, exatamente uma ocorrência do ciclo leva a
	// cobrança; o índice precisa apontar para uma ocorrência existente
	tosaEnabled := domain.ParseFlag(sub.TosaEnabled)
	tosaOccurrence := 0
	if tosaEnabled {
		tosaOccurrence, err = strconv.Atoi(strings.TrimSpace(sub.TosaOccurrence))
		if err != nil || tosaOccurrence < 1 || (frequency.IsValid() && tosaOccurrence > frequency.OccurrenceCount()) {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: "tosa_occurrence", Message: "ocorrência da tosa fora do ciclo"})
		}
	}
	req.Tosa = domain.TosaConfig{
		Enabled:         tosaEnabled,
		Price:           domain.ParseMoney(sub.TosaPrice),
		OccurrenceIndex: tosaOccurrence,
	}

	req.Extra = domain.Extra{
		Description: strings.TrimSpace(sub.ExtraDescription),
		Value:       domain.ParseMoney(sub.ExtraValue),
	}

	if len(sub.Notes) > domain.MaxNotesLength {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "notes", Message: "observações longas demais"})
	} else if trimmed := strings.TrimSpace(sub.Notes); trimmed != "" {
		req.Notes = &trimmed
	}

	req.BaseOverride = domain.ParseMoney(sub.BaseValue)
	req.TotalOverride = domain.ParseMoney(sub.TotalValue)

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return req, nil
}
