package domain

// User is the cached copy of the backend's profile record.
type User struct {
	ID           RecordID `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	BusinessName string   `json:"businessName"`
}
