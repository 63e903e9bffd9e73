package domain

import "time"

// UserProfile - профиль пользователя приложения
type UserProfile struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      *string   `json:"name,omitempty" db:"name"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	JoinedAt  time.Time `json:"joinedAt" db:"created_at"`
}

// Session - результат успешной аутентификации. AccessToken заполняется
// только удалённым бэкендом, в локальном режиме токен не выдаётся.
type Session struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"accessToken,omitempty"`
}
