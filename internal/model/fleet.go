package model

import "time"

// Client owns vehicles and personnel. CUIT is a natural unique key.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CUIT         string    `json:"cuit"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Vehicle owns zero or more vehicle-category documents. Plate is a natural
// unique key.
type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	ClientID  string    `json:"client_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientName string `json:"client_name,omitempty"`

	// GlobalStatus is derived on read as the worst of the owned documents'
	// statuses; it is never stored.
	GlobalStatus Status     `json:"global_status,omitempty"`
	Documents    []Document `json:"documents,omitempty"`
}

// Personnel owns zero or more personnel-category documents. DNI is a natural
// unique key.
type Personnel struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	DNI       string    `json:"dni"`
	ClientID  string    `json:"client_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientName string `json:"client_name,omitempty"`

	GlobalStatus Status     `json:"global_status,omitempty"`
	Documents    []Document `json:"documents,omitempty"`
}

// GlobalStatusOf derives the worst-of status across a set of documents.
func GlobalStatusOf(docs []Document) Status {
	statuses := make([]Status, 0, len(docs))
	for _, d := range docs {
		statuses = append(statuses, d.Status)
	}
	return WorstOf(statuses...)
}
