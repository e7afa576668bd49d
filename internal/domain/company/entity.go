package company

import "context"

// Company is a reference entity; the analytics core only reads it.
type Company struct {
	ID     string
	Name   string
	TaxID  string
	Active bool
}

// Repository lists companies for dashboard filter dropdowns.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
}
