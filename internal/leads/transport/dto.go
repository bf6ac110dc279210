package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateLeadRequest is the intake payload. Date fields use the "leaddate"
// rule registered by the leads module: any encoding the classification
// engine's normalizer accepts.
type CreateLeadRequest struct {
	Name                 string `json:"name" validate:"required,min=1,max=120"`
	Phone                string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email                string `json:"email,omitempty" validate:"omitempty,email"`
	PropertyAddress      string `json:"propertyAddress,omitempty" validate:"omitempty,max=300"`
	SituationCompany     string `json:"situationCompany,omitempty" validate:"omitempty,max=100"`
	NextCallDate         string `json:"nextCallDate,omitempty" validate:"omitempty,leaddate"`
	VisitDate            string `json:"visitDate,omitempty" validate:"omitempty,leaddate"`
	VisitAssignee        string `json:"visitAssignee,omitempty" validate:"omitempty,max=20"`
	ContactMethod        string `json:"contactMethod,omitempty" validate:"omitempty,max=100"`
	PreferredContactTime string `json:"preferredContactTime,omitempty" validate:"omitempty,max=100"`
	PhoneContactPerson   string `json:"phoneContactPerson,omitempty" validate:"omitempty,max=100"`
	InquiryDate          string `json:"inquiryDate,omitempty" validate:"omitempty,leaddate"`
	ValuationMethod      string `json:"valuationMethod,omitempty" validate:"omitempty,max=100"`
	MailingStatus        string `json:"mailingStatus,omitempty" validate:"omitempty,max=50"`
}

// ListLeadsRequest filters the list view by one category identifier.
type ListLeadsRequest struct {
	Category string `form:"category" validate:"omitempty,max=50"`
}

// Response DTOs

type MembershipResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

type LeadResponse struct {
	ID         uuid.UUID            `json:"id"`
	Data       map[string]any       `json:"data"`
	Categories []MembershipResponse `json:"categories"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

type ListLeadsResponse struct {
	Category string         `json:"category"`
	Total    int            `json:"total"`
	Leads    []LeadResponse `json:"leads"`
}

// CountsResponse backs the sidebar summary. Always includes the "all" entry.
type CountsResponse struct {
	Today  string         `json:"today"`
	Counts map[string]int `json:"counts"`
}

type ClassificationResponse struct {
	ID         uuid.UUID            `json:"id"`
	Categories []MembershipResponse `json:"categories"`
}
