package user

import "time"

type UserDB struct {
	ID                  string
	Name                string
	Phone               string
	Role                string
	LocationLatitude    *float64
	LocationLongitude   *float64
	LocationDescription *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

const userColumns = `id, name, phone, role, location_latitude, location_longitude, location_description, created_at, updated_at`

func (u *UserDB) scanTargets() []any {
	return []any{
		&u.ID,
		&u.Name,
		&u.Phone,
		&u.Role,
		&u.LocationLatitude,
		&u.LocationLongitude,
		&u.LocationDescription,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
