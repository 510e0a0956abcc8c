package model

// AppointmentSlot is the booked time range embedded in an appointment.
type AppointmentSlot struct {
	StartTime Time `json:"start_time"`
	EndTime   Time `json:"end_time"`
}

// Appointment is a booked appointment as returned by the backend.
type Appointment struct {
	ID              string          `json:"id"`
	ReferenceNumber string          `json:"reference_number"`
	Status          string          `json:"status"`
	Slot            AppointmentSlot `json:"slot"`
	Provider        Provider        `json:"provider"`
	Patient         PatientInfo     `json:"patient"`
	Reason          string          `json:"reason"`
	CreatedAt       Time            `json:"created_at"`
}

// BookingRequest is the POST /appointments body.
type BookingRequest struct {
	SlotID     string      `json:"slot_id" binding:"required"`
	ProviderID string      `json:"provider_id" binding:"required"`
	Patient    PatientInfo `json:"patient" binding:"required"`
	Reason     string      `json:"reason"`
}

// BookingForm is the browser-facing booking form. The handler flattens it
// into a BookingRequest before calling the backend.
type BookingForm struct {
	SlotID     string `form:"slot_id" binding:"required"`
	ProviderID string `form:"provider_id" binding:"required"`
	FirstName  string `form:"first_name" binding:"required"`
	LastName   string `form:"last_name" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Phone      string `form:"phone" binding:"required"`
	Reason     string `form:"reason"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// Request converts the form into the wire-shape booking request.
func (f *BookingForm) Request() *BookingRequest {
	return &BookingRequest{
		SlotID:     f.SlotID,
		ProviderID: f.ProviderID,
		Patient: PatientInfo{
			FirstName: f.FirstName,
			LastName:  f.LastName,
			Email:     f.Email,
			Phone:     f.Phone,
		},
		Reason: f.Reason,
	}
}

// CalendarAppointment is the shape the calendar page expects from the
// provider appointments endpoint. That endpoint's contract is not pinned
// down yet, so the client hands back raw JSON and this decode happens at
// the page edge.
type CalendarAppointment struct {
	ID          string `json:"id"`
	StartTime   Time   `json:"start_time"`
	EndTime     Time   `json:"end_time"`
	PatientName string `json:"patient_name"`
	Reason      string `json:"reason"`
	Status      string `json:"status,omitempty"`
}
