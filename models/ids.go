package models

// ProfessionalID identifies a professional profile record. Reviews reference it.
type ProfessionalID string

// ProfessionalUserID identifies the user account that owns a professional
// profile. Events reference it instead of the profile id.
type ProfessionalUserID string

func (id ProfessionalID) String() string { return string(id) }

func (id ProfessionalUserID) String() string { return string(id) }
