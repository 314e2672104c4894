package models

import "time"

// User represents a server-side account record.
type User struct {
	ID           string     // UUID пользователя
	Username     string     // уникальный username (в нижнем регистре)
	PasswordHash string     // bcrypt хеш пароля
	CreatedAt    time.Time  // время создания
	LastLogin    *time.Time // время последнего логина (nil если не логинился)
}
