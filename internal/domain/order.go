package domain

import "time"

// Order represents one ingested transaction, scoped to a tenant. Orders are
// immutable after creation; the id is assigned server-side, never by the
// client.
type Order struct {
	ID        string
	TenantID  string
	Amount    float64
	Status    string
	CreatedAt time.Time
}
