package create_appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// validateSubmission normaliza e valida a submissão crua.
// Devolve a request tipada ou a lista completa de erros de campo, nunca um
// objeto parcial. Cada violação gera um erro próprio para que a UI consiga
// apontar o campo exato.
func validateSubmission(sub *Submission, now time.Time) (*ValidatedRequest, []domain.FieldError) {
	var fieldErrors []domain.FieldError
	req := &ValidatedRequest{}

	// client_id: obrigatório, inteiro positivo
	clientID, err := strconv.ParseInt(strings.TrimSpace(sub.ClientID), 10, 64)
	if err != nil || clientID <= 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "client_id", Message: "cliente inválido"})
	} else {
		req.ClientID = clientID
	}

	// pet_ids: obrigatório, deduplicado, inteiros positivos
	req.PetIDs = domain.ParseIDList(sub.PetIDs)
	if len(req.PetIDs) == 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "pet_ids", Message: "selecione ao menos um pet"})
	}

	// type: simples ou passado (assinatura tem fluxo próprio)
	apptType := domain.AppointmentType(strings.TrimSpace(sub.Type))
	if apptType == "" {
		apptType = domain.TypeSimple
	}
	if apptType != domain.TypeSimple && apptType != domain.TypePast {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "type", Message: "tipo de agendamento inválido"})
	}
	req.Type = apptType

	// date: obrigatória, ISO
	date, dateErr := time.Parse(domain.DateFormat, strings.TrimSpace(sub.Date))
	if sub.Date == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "date", Message: "data é obrigatória"})
	} else if dateErr != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "date", Message: "data inválida, use o formato AAAA-MM-DD"})
	} else {
		req.Date = date
	}

	// time: obrigatório, HH:MM
	if sub.Time == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "time", Message: "horário é obrigatório"})
	} else if ts, tErr := types.NewTimeStringFromString(strings.TrimSpace(sub.Time)); tErr != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "time", Message: "horário inválido, use o formato HH:MM"})
	} else {
		req.Time = ts
	}

	// Regra data × tipo: passado exige data estritamente anterior a hoje e
	// status de pagamento; simples exige hoje ou futuro
	if dateErr == nil && sub.Date != "" {
		today := startOfDay(now)
		switch apptType {
		case domain.TypePast:
			if !date.Before(today) {
				fieldErrors = append(fieldErrors, domain.FieldError{Field: "date", Message: "agendamento passado exige data anterior a hoje"})
			}
		case domain.TypeSimple:
			if date.Before(today) {
				fieldErrors = append(fieldErrors, domain.FieldError{Field: "date", Message: "a data não pode estar no passado"})
			}
		}
	}

	if apptType == domain.TypePast {
		payment := domain.PaymentStatus(strings.TrimSpace(sub.PaymentStatus))
		if !domain.IsValidPaymentStatus(payment) {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: "payment_status", Message: "informe o status do pagamento (pago ou pendente)"})
		} else {
			req.PaymentStatus = payment
		}
		req.PendingValue = domain.ParseMoney(sub.PendingValue)
	}

	if len(sub.Notes) > domain.MaxNotesLength {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "notes", Message: "observações longas demais"})
	} else if trimmed := strings.TrimSpace(sub.Notes); trimmed != "" {
		req.Notes = &trimmed
	}

	// Add-ons e valores monetários: vírgula tolerada, nunca negativos
	req.Tosa = domain.TosaConfig{
		Enabled: domain.ParseFlag(sub.TosaEnabled),
		Price:   domain.ParseMoney(sub.TosaPrice),
	}
	req.Taxi = domain.TaxiConfig{
		Enabled: domain.ParseFlag(sub.TaxiEnabled),
		Price:   domain.ParseMoney(sub.TaxiPrice),
	}
	req.Extra = domain.Extra{
		Description: strings.TrimSpace(sub.ExtraDescription),
		Value:       domain.ParseMoney(sub.ExtraValue),
	}

	req.ServiceIDs = domain.ParseIDList(sub.ServiceIDs)
	req.Total = domain.ParseMoney(sub.AppointmentTotal)

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return req, nil
}

// startOfDay zera o horário para comparar apenas datas
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
