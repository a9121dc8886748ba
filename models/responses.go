package models

// LoginResponse is returned by a successful login: the signed session token
// and a snapshot of the authenticated account.
type LoginResponse struct {
	Status      string      `json:"status"`
	AccessToken string      `json:"access_token"`
	Account     AccountView `json:"user"`
}

// StatusResponse is the generic envelope for operations that return no body
// beyond an outcome indicator.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AccountResponse wraps a single account projection.
type AccountResponse struct {
	Status  string      `json:"status"`
	Account AccountView `json:"user"`
}

// AccountListResponse wraps the list-all projection.
type AccountListResponse struct {
	Accounts []AccountView `json:"users"`
}
