package user

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	user := &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.LocationLatitude != nil && u.LocationLongitude != nil {
		user.Location = &entities.Location{
			Latitude:    *u.LocationLatitude,
			Longitude:   *u.LocationLongitude,
			Description: u.LocationDescription,
		}
	}

	return user
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}

// locationColumns раскладывает локацию на nullable колонки.
func locationColumns(location *entities.Location) (lat, lng *float64, description *string) {
	if location == nil {
		return nil, nil, nil
	}
	return &location.Latitude, &location.Longitude, location.Description
}
