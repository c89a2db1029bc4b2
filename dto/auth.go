package dto

// TelegramAuthRequest carries the opaque initData string issued by the
// Telegram WebApp bridge. The server validates its HMAC; clients never
// interpret it.
type TelegramAuthRequest struct {
	InitData string `json:"init_data" validate:"required"`
}

func (r TelegramAuthRequest) Validate() error {
	return validate.Struct(r)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User   UserResponse `json:"user"`
	IsNew  bool         `json:"is_new"`
	Tokens TokenPair    `json:"tokens"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r RefreshTokenRequest) Validate() error {
	return validate.Struct(r)
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required"`
}

func (r AdminLoginRequest) Validate() error {
	return validate.Struct(r)
}

// TelegramUser is the user payload embedded in validated initData.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}
