package models

import "time"

// Event is a class, retreat or workshop hosted by a professional. Reviews are
// embedded in the event document and are not moderated.
type Event struct {
	ID           string             `bson:"id" json:"id"`
	Professional ProfessionalUserID `bson:"professional" json:"professional"`
	Title        string             `bson:"title" json:"title"`
	StartsAt     time.Time          `bson:"startsAt" json:"startsAt,omitzero"`
	Reviews      []EventReview      `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
}

type EventReview struct {
	UserID    string    `bson:"userId" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
