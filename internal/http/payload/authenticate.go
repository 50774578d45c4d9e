package payload

import (
	"eoexstore/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type RoleRequest struct {
	Role string `json:"role"`
}

func (r RoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(core.RoleUser.String(), core.RoleAdmin.String())),
	)
}

func (r RoleRequest) ToCoreRole() core.Role {
	role, _ := core.ParseRole(r.Role)
	return role
}
