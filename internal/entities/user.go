package entities

import "time"

type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleCourier UserRole = "courier"
	RoleSeller  UserRole = "seller"
	RoleAdmin   UserRole = "admin"
)

const DefaultUserRole = RoleClient

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleClient, RoleCourier, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type Location struct {
	Latitude    float64
	Longitude   float64
	Description *string
}

type User struct {
	ID        string
	Name      string
	Phone     string
	Role      UserRole
	Location  *Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModify struct {
	ID       *string
	Name     *string
	Phone    *string
	Role     *UserRole
	Location *Location
}

// Actor - аутентифицированный вызывающий. Заголовки проставляет шлюз перед сервисом.
type Actor struct {
	UserID string
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
