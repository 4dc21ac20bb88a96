package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse mirrors the {message, status} envelope the API returns on
// mutating operations.
type messageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// --- Request types ---

type loginRequest struct {
	EmailOrPhoneNo string `json:"email_or_phone_no" validate:"required"`
	Password       string `json:"password"          validate:"required"`
	UserRole       int    `json:"user_role"         validate:"required"`
}

type logoutRequest struct {
	UserID string `json:"user_id"`
}

type createUserRequest struct {
	EmailID     string `json:"email_id"     validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	FullName    string `json:"full_name"    validate:"required"`
	PhoneNumber string `json:"phone_number"`
	UserRole    int    `json:"user_role"`
}

type openRegisterRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	FullName    string `json:"full_name"    validate:"required"`
	PhoneNumber string `json:"phone_number"`
}

type updateMeRequest struct {
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type updateUserRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	IsActive    *bool   `json:"is_active"`
}

// --- Response types ---

type loginResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	UserID  string `json:"user_id"`
	Token   string `json:"token,omitempty"`
}

type userResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
