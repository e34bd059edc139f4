package models

import "time"

// LeadStatus represents where an inquiry sits in the sales pipeline
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQuoted    LeadStatus = "quoted"
	LeadBooked    LeadStatus = "booked"
	LeadLost      LeadStatus = "lost"
)

// DefaultBarType is used when the form leaves bar_type empty
const DefaultBarType = "both"

// LeadSubmission is the contact form payload, sent once per submit
type LeadSubmission struct {
	Name          string `json:"name" binding:"required" validate:"required"`
	Email         string `json:"email" binding:"required,email" validate:"required"`
	Phone         string `json:"phone" binding:"required" validate:"required"`
	EventType     string `json:"event_type" binding:"required" validate:"required"`
	EventDate     string `json:"event_date,omitempty"`
	City          string `json:"city,omitempty"`
	Venue         string `json:"venue,omitempty"`
	GuestCount    string `json:"guest_count,omitempty"`
	Duration      string `json:"duration,omitempty"`
	BarType       string `json:"bar_type,omitempty" binding:"omitempty,oneof=both cocktail mocktail"`
	Theme         string `json:"theme,omitempty"`
	BudgetRange   string `json:"budget_range,omitempty"`
	Message       string `json:"message,omitempty"`
	SetupInterest string `json:"setup_interest,omitempty"`
}

// Lead is a stored inquiry
type Lead struct {
	ID            string              `json:"id" gorm:"primaryKey;size:36"`
	Name          string              `json:"name" gorm:"not null"`
	Email         string              `json:"email" gorm:"not null;index"`
	Phone         string              `json:"phone" gorm:"not null"`
	EventType     string              `json:"event_type" gorm:"not null"`
	EventDate     string              `json:"event_date,omitempty"`
	City          string              `json:"city,omitempty"`
	Venue         string              `json:"venue,omitempty"`
	GuestCount    string              `json:"guest_count,omitempty"`
	Duration      string              `json:"duration,omitempty"`
	BarType       string              `json:"bar_type" gorm:"not null;default:'both'"`
	Theme         string              `json:"theme,omitempty"`
	BudgetRange   string              `json:"budget_range,omitempty"`
	Message       string              `json:"message,omitempty"`
	SetupInterest string              `json:"setup_interest,omitempty"`
	Source        string              `json:"source" gorm:"not null;default:'website'"`
	Status        LeadStatus          `json:"status" gorm:"not null;default:'new';index"`
	StatusHistory []LeadStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:LeadID"`
	CreatedAt     time.Time           `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// LeadStatusHistory records every pipeline move for a lead
type LeadStatusHistory struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	LeadID     string     `json:"lead_id" gorm:"not null;size:36;index"`
	FromStatus LeadStatus `json:"from_status"`
	ToStatus   LeadStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string     `json:"changed_by"`
	Note       string     `json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewLead copies a submission into a fresh lead record. ID and timestamps are set by the caller.
func NewLead(s LeadSubmission) Lead {
	barType := s.BarType
	if barType == "" {
		barType = DefaultBarType
	}
	return Lead{
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		EventType:     s.EventType,
		EventDate:     s.EventDate,
		City:          s.City,
		Venue:         s.Venue,
		GuestCount:    s.GuestCount,
		Duration:      s.Duration,
		BarType:       barType,
		Theme:         s.Theme,
		BudgetRange:   s.BudgetRange,
		Message:       s.Message,
		SetupInterest: s.SetupInterest,
		Source:        "website",
		Status:        LeadNew,
	}
}
