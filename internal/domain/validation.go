package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError is a validation error pointing at the offending form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors of a rejected submission.
// Always recovered at the boundary and surfaced as structured data.
type ValidationError struct {
	Fields []FieldError
}

// Error implements error listing the rejected fields
func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ParseIDList converte, valida e deduplica uma lista de ids mantendo a
// ordem de chegada. Valores não numéricos ou não positivos são descartados.
func ParseIDList(raw []string) []int64 {
	seen := make(map[int64]struct{}, len(raw))
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ParseMoney interpreta um valor monetário tolerando vírgula decimal
// ("35,50" → 35.50) e trava em zero valores negativos ou ilegíveis
func ParseMoney(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// ParseFlag interpreta checkboxes de formulário
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "sim":
		return true
	}
	return false
}
