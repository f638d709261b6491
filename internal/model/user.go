package model

import "time"

// User is a pre-registered roster entry for a departing employee. It
// personalizes the outbound WhatsApp invitation and pre-fills identity
// fields in the survey form.
// swagger:model User
type User struct {
	BaseModel
	FirstName      string     `gorm:"size:100" json:"firstName"`
	LastName       string     `gorm:"size:100" json:"lastName"`
	Identification string     `gorm:"size:50;uniqueIndex" json:"identification"`
	Phone          string     `gorm:"size:20" json:"phone"`
	ExitDate       *time.Time `json:"exitDate"`
	Area           string     `gorm:"size:100" json:"area"`
	Country        string     `gorm:"size:50" json:"country"`

	WhatsAppSent      bool       `gorm:"index" json:"whatsappSent"`
	WhatsAppSentAt    *time.Time `json:"whatsappSentAt"`
	WhatsAppMessageID string     `gorm:"size:255" json:"whatsappMessageId"`
	WhatsAppSendCount int        `gorm:"default:0" json:"whatsappSendCount"`

	ResponseSubmitted   bool       `gorm:"index" json:"responseSubmitted"`
	ResponseSubmittedAt *time.Time `json:"responseSubmittedAt"`

	StartDate      *time.Time `json:"startDate"`
	Position       string     `gorm:"size:255" json:"position"`
	SubArea        string     `gorm:"size:255" json:"subArea"`
	Leader         string     `gorm:"size:255" json:"leader"`
	TrainingLeader string     `gorm:"size:255" json:"trainingLeader"`
	HiringCountry  string     `gorm:"size:50" json:"hiringCountry"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
