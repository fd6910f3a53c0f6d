package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrAuthDisabled       = errors.New("authentication is not configured")
)

const DefaultOwnerName = "owner"

// Owner is the single account allowed to write to the log.
type Owner struct {
	Name         string
	PasswordHash string
}

func NewOwner(name, passwordHash string) *Owner {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultOwnerName
	}
	return &Owner{
		Name:         name,
		PasswordHash: passwordHash,
	}
}

func (o *Owner) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 12)
	if err != nil {
		return err
	}

	o.PasswordHash = string(hash)
	return nil
}

func (o *Owner) CheckPassword(plainPassword string) error {
	if o.PasswordHash == "" {
		return ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(plainPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
