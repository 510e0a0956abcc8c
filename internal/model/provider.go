package model

// Provider is a bookable care provider. Read-only; the backend owns it.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio,omitempty"`
}
