package dto

import "memoria/internal/domain/model"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	details := map[string]string{}
	if r.Username == "" {
		details["username"] = "this field is required"
	}
	if r.Password == "" {
		details["password"] = "this field is required"
	}

	return details
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserProfile is the public shape of an account. is_admin is computed
// from the staff and superuser flags, never stored.
type UserProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
	IsAdmin   bool   `json:"is_admin"`
}

func NewUserProfile(u *model.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		IsAdmin:   u.IsAdmin(),
	}
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

type StatusResponse struct {
	Success       bool         `json:"success"`
	Authenticated bool         `json:"authenticated"`
	Admin         bool         `json:"admin"`
	User          *UserProfile `json:"user,omitempty"`
	Error         string       `json:"error,omitempty"`
}

type CreateAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type SecretRevealResponse struct {
	Success  bool             `json:"success"`
	Memories []MemoryResponse `json:"memories"`
}
