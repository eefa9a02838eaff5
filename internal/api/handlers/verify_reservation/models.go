package verify_reservation

// VerifyRequest HTTP request model
type VerifyRequest struct {
	Verified *bool `json:"verified"`
}
