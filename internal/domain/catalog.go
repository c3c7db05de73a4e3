package domain

import "github.com/shopspring/decimal"

// Service is a grooming service from the catalog. Read-only here: its price
// is snapshotted into appointments at booking time.
type Service struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Category string
}

// Client is the owner of pets and appointments. Lifecycle is managed by an
// external collaborator; the engine only reads identity and contact data.
type Client struct {
	ID    int64
	Name  string
	Phone string
}

// Pet belongs to exactly one client
type Pet struct {
	ID       int64
	ClientID int64
	Name     string
	Breed    string
}
