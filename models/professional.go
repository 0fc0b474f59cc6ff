package models

import "time"

// RatingSummary is the rolling rating stored on the professional record.
type RatingSummary struct {
	Average      float64 `bson:"average" json:"average"`
	TotalReviews int     `bson:"totalReviews" json:"totalReviews"`
}

type Professional struct {
	ID          ProfessionalID     `bson:"id" json:"id"`
	UserID      ProfessionalUserID `bson:"userId" json:"userId"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Specialty   string             `bson:"specialty,omitempty" json:"specialty,omitempty"` // e.g. "yoga", "therapy"
	Rating      RatingSummary      `bson:"rating" json:"rating"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}
