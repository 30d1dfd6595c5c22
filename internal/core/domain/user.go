package domain

import "unicode"

// AuthorizationStatus - состояние авторизации текущего пользователя.
type AuthorizationStatus string

const (
	AuthorizationUnknown AuthorizationStatus = "UNKNOWN"
	AuthorizationAuth    AuthorizationStatus = "AUTH"
	AuthorizationNoAuth  AuthorizationStatus = "NO_AUTH"
)

// AuthInfo - данные пользователя, которые возвращает API после входа или проверки токена.
type AuthInfo struct {
	ID        int
	Email     string
	Name      string
	AvatarURL string
	IsPro     bool
	Token     string
}

type AuthData struct {
	Email    string
	Password string
}

// Validate: email не пустой, пароль содержит хотя бы одну букву и одну цифру.
func (d AuthData) Validate() error {
	if d.Email == "" || d.Password == "" {
		return ErrInvalidCredentials
	}
	var hasLetter, hasDigit bool
	for _, r := range d.Password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSpace(r):
			return ErrInvalidCredentials
		}
	}
	if !hasLetter || !hasDigit {
		return ErrInvalidCredentials
	}
	return nil
}
