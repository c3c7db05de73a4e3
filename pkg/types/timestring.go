package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// ErrInvalidTimeString é retornado quando a string não está no formato HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString representa um horário do dia no formato "HH:MM" (ex.: "10:30").
// É armazenado como string para casar com a coluna TIME do banco e com o
// payload JSON dos clientes.
type TimeString string

// NewTimeString cria um TimeString a partir de um time.Time (descarta a data)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString valida e cria um TimeString a partir de uma string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String implementa fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// IsZero informa se o horário está vazio
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate verifica o formato HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Parse converte para time.Time no dia zero (apenas hora e minuto)
func (t TimeString) Parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// AddMinutes devolve um novo TimeString deslocado em n minutos
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	parsed, err := t.Parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(n) * time.Minute)), nil
}

// IsBefore compara dois horários lexicograficamente (o formato HH:MM garante
// que a ordem lexicográfica coincide com a ordem temporal)
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter compara dois horários
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
