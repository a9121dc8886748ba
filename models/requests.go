package models

// RegisterRequest carries the input of the registration operation.
// DateOfBirth is textual in "day/month/year" format and is parsed by the
// account service.
type RegisterRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       string  `json:"email"`
	DateOfBirth string  `json:"date_of_birth"`
	Address     *string `json:"address,omitempty"`
}

// LoginRequest carries the credentials of the login operation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerificationRequest carries an email and the one-time code the account
// holder received out of band.
type VerificationRequest struct {
	Email string `json:"user_email"`
	Code  string `json:"verification_code"`
}

// LocationUpdate is the location group of an account. All three fields are
// overwritten together.
type LocationUpdate struct {
	Address string `json:"address"`
	LGA     string `json:"lga"`
	State   string `json:"state"`
}

// ProfileUpdate carries the mutable profile fields of an account.
// DateOfBirth is textual in "day/month/year" format.
type ProfileUpdate struct {
	Username    string `json:"username"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	LGA         string `json:"lga"`
	State       string `json:"state"`
}

// OnlineUpdate toggles the is_online flag of an account.
type OnlineUpdate struct {
	IsOnline bool `json:"is_online"`
}
