package ghldomain

import (
	"time"
)

// Contact representa um contato retornado pela API do GoHighLevel
type Contact struct {
	ID          string    `json:"id"`
	LocationID  string    `json:"locationId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Source      string    `json:"source"`
	DateAdded   time.Time `json:"dateAdded"`
	Tags        []string  `json:"tags"`
}

// ContactsResponse é o envelope paginado de /contacts
type ContactsResponse struct {
	Contacts []Contact    `json:"contacts"`
	Meta     ContactsMeta `json:"meta"`
}

type ContactsMeta struct {
	Total       int    `json:"total"`
	NextPageURL string `json:"nextPageUrl"`
	StartAfterID string `json:"startAfterId"`
}

// Appointment representa um agendamento do calendário
type Appointment struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"appointmentStatus"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AppointmentsResponse struct {
	Events []Appointment `json:"events"`
}
