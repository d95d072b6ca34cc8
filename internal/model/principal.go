package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleOperator UserRole = "OPERATOR"
	UserRoleDevice   UserRole = "DEVICE"
)

type Principal struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsOperator() bool {
	return p.Role == UserRoleOperator
}

func (p Principal) IsDevice() bool {
	return p.Role == UserRoleDevice
}

// CanScan - все известные роли могут валидировать и сканировать
func (p Principal) CanScan() bool {
	return p.IsAdmin() || p.IsOperator() || p.IsDevice()
}
