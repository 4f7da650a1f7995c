package models

import "time"

type Campaign struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CTAText     string    `json:"cta_text,omitempty" bson:"cta_text,omitempty"`
	CTALink     string    `json:"cta_link,omitempty" bson:"cta_link,omitempty"`
	StartDate   time.Time `json:"start_date" bson:"start_date"`
	EndDate     time.Time `json:"end_date" bson:"end_date"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type CampaignCreate struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	CTAText     string    `json:"cta_text"`
	CTALink     string    `json:"cta_link"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	IsActive    *bool     `json:"is_active"`
}

type CampaignUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	CTAText     *string    `json:"cta_text,omitempty"`
	CTALink     *string    `json:"cta_link,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// Live reports whether the campaign banner should be shown at the given time.
func (c *Campaign) Live(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

type Vehicle struct {
	ID             string     `json:"id" bson:"id"`
	Plate          string     `json:"plate" bson:"plate"`
	Model          string     `json:"model" bson:"model"`
	OdometerKM     int        `json:"odometer_km" bson:"odometer_km"`
	MaintenanceDue *time.Time `json:"maintenance_due,omitempty" bson:"maintenance_due,omitempty"`
	InsuranceDue   *time.Time `json:"insurance_due,omitempty" bson:"insurance_due,omitempty"`
	InspectionDue  *time.Time `json:"inspection_due,omitempty" bson:"inspection_due,omitempty"`
	Notes          string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
}

type VehicleCreate struct {
	Plate          string     `json:"plate" binding:"required"`
	Model          string     `json:"model" binding:"required"`
	OdometerKM     int        `json:"odometer_km"`
	MaintenanceDue *time.Time `json:"maintenance_due"`
	InsuranceDue   *time.Time `json:"insurance_due"`
	InspectionDue  *time.Time `json:"inspection_due"`
	Notes          string     `json:"notes"`
}

type VehicleUpdate struct {
	Plate          *string    `json:"plate,omitempty"`
	Model          *string    `json:"model,omitempty"`
	OdometerKM     *int       `json:"odometer_km,omitempty"`
	MaintenanceDue *time.Time `json:"maintenance_due,omitempty"`
	InsuranceDue   *time.Time `json:"insurance_due,omitempty"`
	InspectionDue  *time.Time `json:"inspection_due,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type ContactMessageCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactMessageUpdate struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=new read replied"`
}

type Visitor struct {
	IP        string    `json:"ip" bson:"ip"`
	Page      string    `json:"page" bson:"page"`
	Country   string    `json:"country" bson:"country"`
	City      string    `json:"city" bson:"city"`
	Region    string    `json:"region" bson:"region"`
	Timezone  string    `json:"timezone" bson:"timezone"`
	Browser   string    `json:"browser" bson:"browser"`
	OS        string    `json:"os" bson:"os"`
	Device    string    `json:"device" bson:"device"`
	UserAgent string    `json:"user_agent" bson:"user_agent"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
