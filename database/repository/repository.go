package repository

import (
	"wellnest/database"
	eventRepo "wellnest/database/repository/event"
	professionalRepo "wellnest/database/repository/professional"
	reviewRepo "wellnest/database/repository/review"
)

var ErrNotFound = database.ErrNotFound

// Re-export the repository interfaces and constructors.
type ReviewRepository = reviewRepo.ReviewRepository

var NewMongoReviewRepo = reviewRepo.NewMongoReviewRepo

type EventRepository = eventRepo.EventRepository

var NewMongoEventRepo = eventRepo.NewMongoEventRepo

type ProfessionalRepository = professionalRepo.ProfessionalRepository

var NewMongoProfessionalRepo = professionalRepo.NewMongoProfessionalRepo
