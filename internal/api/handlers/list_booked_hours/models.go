package list_booked_hours

// ByDateRequest HTTP request model
type ByDateRequest struct {
	Date string `json:"date"` // "2026-11-10"
}
