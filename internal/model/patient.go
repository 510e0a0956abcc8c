package model

// PatientInfo identifies the patient on a booking request. All four fields
// are required; anything beyond presence is the backend's problem.
type PatientInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}
