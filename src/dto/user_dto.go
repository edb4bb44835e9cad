package dto

type CreateUserDTO struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=8"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
