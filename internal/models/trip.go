package models

import "time"

// Trip represents a booked trip. Cost is the pre-multiplied total for the
// whole trip in rupees, not a per-day rate. Date is an ISO "2006-01-02"
// string as entered by the user.
type Trip struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Cost        int64  `json:"cost"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// User represents a registered account. PasswordHash and SecurityAnswerHash
// are bcrypt hashes stored in the legacy "password" and "security_answer"
// columns.
type User struct {
	Username           string `json:"username"`
	PasswordHash       string `json:"-"`
	SecurityAnswerHash string `json:"-"`
}

// Session represents a web login session.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TravelModes are the accepted values for Trip.Mode.
var TravelModes = []string{"Bus", "Train", "Flight"}

// TripCategories are the accepted values for Trip.Category.
var TripCategories = []string{"Business", "Vacation", "Family", "Solo"}
