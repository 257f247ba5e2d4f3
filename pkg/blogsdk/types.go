package blogsdk

// ErrorResponse is the standard error body returned by the API.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "forbidden", "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails,
// typically from the register endpoint.
type ValidationErrorResponse struct {
	// Code is the error code (e.g., "validation_error")
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific validation errors (field name: error message)
	Details map[string]string `json:"details,omitempty"`
}

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	// Password must be at least 8 characters and contain at least one digit
	// and one letter.
	Password string `json:"password"`

	// Password2 must match Password.
	Password2 string `json:"password2"`
}

// RegisterResponse echoes the created account. The password is never returned.
type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned from a successful login.
type TokenResponse struct {
	// AccessToken is the JWT access token used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// ArticleResponse is the wire representation of an article. The author, id
// and timestamps are deliberately not part of the client contract.
type ArticleResponse struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// CreateArticleRequest is the body for POST /article. IsPublic defaults to
// false when omitted, so new articles start as drafts.
type CreateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// UpdateArticleRequest is the body for PUT /article/{id}. Nil fields are
// left unchanged.
type UpdateArticleRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency status on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
