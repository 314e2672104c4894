package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern определяет допустимый формат username
// Латинские буквы, цифры, точка, дефис, нижнее подчеркивание
// Длина: 2-64 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,64}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 2
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 64
)

// NormalizeUsername приводит username к каноническому виду.
// Username регистронезависимый: все кеши и записи хранятся в нижнем регистре.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, dots, dashes and underscores")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
