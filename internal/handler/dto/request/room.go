package request

type CreateRoom struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Rate        string   `json:"rate" binding:"required"`
	Images      []string `json:"images" binding:"max=3"`
}

type UpdateRoom struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Rate        *string  `json:"rate"`
	Images      []string `json:"images" binding:"max=3"`
}
