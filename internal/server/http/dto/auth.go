package dto

// AuthRequest describes email/password payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffResponse reports whether the caller holds the staff flag.
type StaffResponse struct {
	IsStaff bool `json:"is_staff"`
}
