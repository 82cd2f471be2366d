package responses

import "time"

type Login struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
