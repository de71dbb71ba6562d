package request

type Register struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	SecondName  string `json:"second_name"`
	PhoneNumber string `json:"phone_number"`
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Refresh struct {
	RefreshToken string `json:"refresh" binding:"required"`
}
