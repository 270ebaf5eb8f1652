package dto

import (
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description *string `json:"description,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Location  *Location `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserCreate struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type UserCreateResponse struct {
	ID string `json:"id"`
}

type UserUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Role     *string   `json:"role,omitempty"`
	Location *Location `json:"location,omitempty"`
}

func (l *Location) ToEntity() *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Description: l.Description,
	}
}

func UserFromEntity(u *entities.User) User {
	res := User{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.Location != nil {
		res.Location = &Location{
			Latitude:    u.Location.Latitude,
			Longitude:   u.Location.Longitude,
			Description: u.Location.Description,
		}
	}
	return res
}

func UsersFromEntity(users []entities.User) []User {
	res := make([]User, 0, len(users))
	for i := range users {
		res = append(res, UserFromEntity(&users[i]))
	}
	return res
}
