package model

// TimeSlot is one bookable interval offered by a provider. Slots are created
// by the backend per availability query and discarded after booking or
// navigation; nothing caches them across requests.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime Time   `json:"start_time"`
	EndTime   Time   `json:"end_time"`
	Available bool   `json:"available"`
}
