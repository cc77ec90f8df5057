package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Username  string `form:"username" json:"username" binding:"required,min=3,max=150"`
	Password  string `form:"password" json:"password" binding:"required,min=6,max=128"`
	FirstName string `form:"first_name" json:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" json:"last_name" binding:"max=150"`
	Email     string `form:"email" json:"email" binding:"required,email"`
}

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// ProfileDTO 公开的用户资料
type ProfileDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// EditProfileDTO 资料修改
type EditProfileDTO struct {
	FirstName *string `form:"first_name" json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `form:"last_name" json:"last_name" binding:"omitempty,max=150"`
	Email     *string `form:"email" json:"email" binding:"omitempty,email"`
}
