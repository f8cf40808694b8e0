package dto

// Forms arrive as application/x-www-form-urlencoded; echo binds them via the
// form tags.

type SignupDTO struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Phone    string `form:"phone" validate:"omitempty,min=5"`
}

type LoginDTO struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}
