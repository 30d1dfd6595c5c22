package domain

import "errors"

var (
	// ErrNotFound - API не знает запрошенный объект (404).
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized - нет токена или он недействителен (401).
	ErrNotAuthorized = errors.New("not authorized")
	// ErrBadRequest - API отклонил данные запроса (400).
	ErrBadRequest = errors.New("bad request")

	ErrInvalidReview      = errors.New("review must have rating 1-5 and 50-300 characters of text")
	ErrInvalidCredentials = errors.New("email is required and password must contain a letter and a digit")
)
