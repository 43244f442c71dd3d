package handler

// failureResponse is the envelope returned on every 4xx/5xx response.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// provisionRequest carries the optional bootstrap payload. Every field may
// be omitted; blanks fall back to the configured defaults. Unknown fields
// are rejected at decode time.
type provisionRequest struct {
	Email     string `json:"email"     validate:"omitempty,email"`
	Password  string `json:"password"  validate:"omitempty,min=6"`
	FirstName string `json:"firstName" validate:"omitempty"`
	LastName  string `json:"lastName"  validate:"omitempty"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    userSummary `json:"user"`
	Token   string      `json:"token"`
}

type provisionData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type provisionResponse struct {
	Success bool          `json:"success"`
	Data    provisionData `json:"data"`
}

type meResponse struct {
	Success bool        `json:"success"`
	User    userSummary `json:"user"`
}
