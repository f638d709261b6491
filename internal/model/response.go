package model

import (
	"encoding/json"
	"time"
)

// Response is the canonical exit-survey record. It is created once at
// submission time; the only field ever written afterwards is Analysis.
// AllResponses keeps the submitted answers verbatim so the canonical
// columns can always be re-derived or audited.
// swagger:model Response
type Response struct {
	BaseModel
	FullName       string     `gorm:"size:255" json:"fullName"`
	Identification string     `gorm:"size:50;uniqueIndex" json:"identification"`
	ExitDate       *time.Time `json:"exitDate"`
	Tenure         string     `gorm:"size:100" json:"tenure"`
	Area           string     `gorm:"size:100;index" json:"area"`
	Country        string     `gorm:"size:50" json:"country"`
	LastLeader     string     `gorm:"size:255" json:"lastLeader"`

	ExitReasonCategory  string          `gorm:"size:255" json:"exitReasonCategory"`
	ExitReasonDetail    string          `gorm:"type:text" json:"exitReasonDetail"`
	ExperienceRating    *int            `json:"experienceRating"`
	WouldRecommend      string          `gorm:"type:text" json:"wouldRecommend"`
	WouldReturn         string          `gorm:"type:text" json:"wouldReturn"`
	WhatEnjoyed         string          `gorm:"type:text" json:"whatEnjoyed"`
	WhatToImprove       string          `gorm:"type:text" json:"whatToImprove"`
	SatisfactionRatings json.RawMessage `gorm:"type:json" json:"satisfactionRatings,omitempty"`
	NewCompanyInfo      string          `gorm:"type:text" json:"newCompanyInfo"`

	// Full raw submission, exactly as received.
	AllResponses json.RawMessage `gorm:"type:json" json:"allResponses,omitempty"`

	Analysis string `gorm:"type:text" json:"analysis,omitempty"`

	// Pre-filled from the roster entry when the form was opened with a
	// registered user id.
	StartDate      *time.Time `json:"startDate"`
	Position       string     `gorm:"size:255" json:"position"`
	SubArea        string     `gorm:"size:255" json:"subArea"`
	Leader         string     `gorm:"size:255" json:"leader"`
	TrainingLeader string     `gorm:"size:255" json:"trainingLeader"`
	HiringCountry  string     `gorm:"size:50" json:"hiringCountry"`
}

func (Response) TableName() string {
	return "responses"
}

// SatisfactionMap decodes the stored satisfaction ratings. Malformed or
// absent data yields an empty map, never an error.
func (r *Response) SatisfactionMap() map[string]string {
	out := map[string]string{}
	if len(r.SatisfactionRatings) > 0 {
		_ = json.Unmarshal(r.SatisfactionRatings, &out)
	}
	return out
}
