package models

import "time"

// QueryType classifies a subject query for follow-up routing.
type QueryType string

const (
	QueryTypeGeneral    QueryType = "general"
	QueryTypeCurriculum QueryType = "curriculum"
	QueryTypeTutor      QueryType = "tutor"
	QueryTypePricing    QueryType = "pricing"
	QueryTypeDemo       QueryType = "demo"
)

// ValidQueryType reports whether t is a known query type.
func ValidQueryType(t string) bool {
	switch QueryType(t) {
	case QueryTypeGeneral, QueryTypeCurriculum, QueryTypeTutor, QueryTypePricing, QueryTypeDemo:
		return true
	default:
		return false
	}
}

// SubjectQuery is an immutable question about a specific subject. The
// subject is a denormalized string supplied by the caller context, not a
// relation into a subject catalog.
type SubjectQuery struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Subject   string    `db:"subject" json:"subject"`
	QueryType QueryType `db:"query_type" json:"query_type"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ContactMessage is an immutable free-form message from the contact page.
type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
