package models

// RegisterRequest dikirim ke POST /auth/register.
// Vehicle nil untuk penumpang, sehingga field kendaraan tidak ikut terkirim.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"nama"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
	*Vehicle
}

// NewRegisterRequest builds the payload for an applicant.
func NewRegisterRequest(a Applicant) RegisterRequest {
	acc := a.account()
	req := RegisterRequest{
		Username: acc.Username,
		Name:     acc.Name,
		Email:    acc.Email,
		Phone:    acc.Phone,
		Role:     acc.Role,
		Password: acc.Password,
	}
	if d, ok := a.(Driver); ok {
		v := d.Vehicle
		req.Vehicle = &v
	}
	return req
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type SaveFcmTokenRequest struct {
	UserID   string `json:"userId"`
	FcmToken string `json:"fcmToken"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Name     string `json:"nama,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse covers both the {user, token} and {accessToken, userId} shapes.
type AuthResponse struct {
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	UserID      string `json:"userId,omitempty"`
	User        User   `json:"user"`
}

// BearerToken returns whichever access token the backend sent.
func (r AuthResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}
