package models

// LoginResponse is returned by the login endpoint on success. The client
// keeps UserID for the User-ID header of subsequent calls and combines
// Username with the password it already holds to derive the session key.
type LoginResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// MessageResponse is a generic confirmation body for endpoints that have no
// data to return (register, replace-for-date, update, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse is the body of the root health-check endpoint.
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// DateRange bounds a range query for expense rows. Both ends are inclusive.
type DateRange struct {
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`
}
