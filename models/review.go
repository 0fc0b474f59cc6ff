package models

import "time"

// ContentType is the kind of content a review was written against.
type ContentType string

const (
	ContentTypeProduct ContentType = "product"
	ContentTypeSession ContentType = "session"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Review struct {
	ID             string         `bson:"id" json:"id"`
	ProfessionalID ProfessionalID `bson:"professionalId" json:"professionalId"`
	ClientID       string         `bson:"clientId" json:"clientId"`
	ContentType    ContentType    `bson:"contentType" json:"contentType"`
	ContentID      string         `bson:"contentId" json:"contentId"`
	Rating         int            `bson:"rating" json:"rating"` // 1..5
	Comment        string         `bson:"comment,omitempty" json:"comment,omitempty"`
	Status         ReviewStatus   `bson:"status" json:"status"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ReviewRating is the projection of a review used for aggregation.
type ReviewRating struct {
	ContentType ContentType `bson:"contentType"`
	Rating      int         `bson:"rating"`
}
