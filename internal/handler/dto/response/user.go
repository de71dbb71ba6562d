package response

import (
	"time"

	"samhotel-api/internal/usecase/queries"
)

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	SecondName  string     `json:"second_name"`
	PhoneNumber string     `json:"phone_number"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) User {
	return User{
		ID:          v.ID.String(),
		Email:       v.Email,
		Role:        v.Role,
		SecondName:  v.SecondName,
		PhoneNumber: v.PhoneNumber,
		LastLogin:   v.LastLogin,
		CreatedAt:   v.CreatedAt,
	}
}
