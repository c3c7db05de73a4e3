package create_appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

var testNow = time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)

func validSubmission() *Submission {
	return &Submission{
		ClientID:   "10",
		PetIDs:     []string{"3", "7"},
		Date:       "2026-03-25",
		Time:       "14:30",
		Type:       "simples",
		ServiceIDs: []string{"1", "2"},
	}
}

func fieldNames(errs []domain.FieldError) []string {
	names := make([]string, len(errs))
	for i, fe := range errs {
		names[i] = fe.Field
	}
	return names
}

func TestValidateSubmissionOK(t *testing.T) {
	req, errs := validateSubmission(validSubmission(), testNow)
	require.Empty(t, errs)
	require.NotNil(t, req)

	assert.Equal(t, int64(10), req.ClientID)
	assert.Equal(t, []int64{3, 7}, req.PetIDs)
	assert.Equal(t, domain.TypeSimple, req.Type)
	assert.Equal(t, "14:30", req.Time.String())
	assert.Equal(t, []int64{1, 2}, req.ServiceIDs)
}

func TestValidateSubmissionDefaultsToSimple(t *testing.T) {
	sub := validSubmission()
	sub.Type = ""

	req, errs := validateSubmission(sub, testNow)
	require.Empty(t, errs)
	assert.Equal(t, domain.TypeSimple, req.Type)
}

func TestValidateSubmissionCollectsAllFieldErrors(t *testing.T) {
	sub := &Submission{
		ClientID: "abc",
		PetIDs:   []string{"-1"},
		Date:     "25/03/2026",
		Time:     "2pm",
		Type:     "simples",
	}

	req, errs := validateSubmission(sub, testNow)
	assert.Nil(t, req)
	assert.ElementsMatch(t, []string{"client_id", "pet_ids", "date", "time"}, fieldNames(errs))
}

func TestValidateSubmissionDateRules(t *testing.T) {
	tests := []struct {
		name      string
		apptType  string
		date      string
		payment   string
		wantField string
	}{
		{"simples no passado", "simples", "2026-03-19", "", "date"},
		{"passado com data de hoje", "passado", "2026-03-20", "pago", "date"},
		{"passado com data futura", "passado", "2026-03-25", "pago", "date"},
		{"passado sem status de pagamento", "passado", "2026-03-10", "", "payment_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			sub.Type = tt.apptType
			sub.Date = tt.date
			sub.PaymentStatus = tt.payment

			_, errs := validateSubmission(sub, testNow)
			assert.Contains(t, fieldNames(errs), tt.wantField)
		})
	}

	// Simples hoje é válido
	sub := validSubmission()
	sub.Date = "2026-03-20"
	_, errs := validateSubmission(sub, testNow)
	assert.Empty(t, errs)
}

func TestValidateSubmissionPastPayment(t *testing.T) {
	sub := validSubmission()
	sub.Type = "passado"
	sub.Date = "2026-03-10"
	sub.PaymentStatus = "pendente"
	sub.PendingValue = "45,90"

	req, errs := validateSubmission(sub, testNow)
	require.Empty(t, errs)

	assert.Equal(t, domain.PaymentPending, req.PaymentStatus)
	assert.True(t, decimal.RequireFromString("45.90").Equal(req.PendingValue))
}

func TestValidateSubmissionMoneyFields(t *testing.T) {
	sub := validSubmission()
	sub.TosaEnabled = "sim"
	sub.TosaPrice = "80,00"
	sub.TaxiEnabled = "1"
	sub.TaxiPrice = "-15"
	sub.ExtraDescription = "  perfume  "
	sub.ExtraValue = "12.5"
	sub.AppointmentTotal = "180,50"

	req, errs := validateSubmission(sub, testNow)
	require.Empty(t, errs)

	assert.True(t, req.Tosa.Enabled)
	assert.True(t, decimal.RequireFromString("80").Equal(req.Tosa.Price))
	assert.True(t, req.Taxi.Enabled)
	// Negativo trava em zero
	assert.True(t, req.Taxi.Price.IsZero())
	assert.Equal(t, "perfume", req.Extra.Description)
	assert.True(t, decimal.RequireFromString("12.5").Equal(req.Extra.Value))
	assert.True(t, decimal.RequireFromString("180.50").Equal(req.Total))
}

func TestValidateSubmissionNotes(t *testing.T) {
	sub := validSubmission()
	sub.Notes = "   usar shampoo hipoalergênico   "

	req, errs := validateSubmission(sub, testNow)
	require.Empty(t, errs)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "usar shampoo hipoalergênico", *req.Notes)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	sub.Notes = string(long)
	_, errs = validateSubmission(sub, testNow)
	assert.Contains(t, fieldNames(errs), "notes")
}
