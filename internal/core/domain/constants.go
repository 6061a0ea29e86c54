package domain

import "errors"

var (
	ErrNoVideoFound  = errors.New("no video found")
	ErrInvalidURL    = errors.New("invalid video url")
	ErrNoCaptionLink = errors.New("no link in caption")
	ErrUserNotFound  = errors.New("user not found")
)
