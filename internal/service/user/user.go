package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

// User - справочник участников доставки. Локация продавца служит точкой забора заказа.
type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// CreateUser регистрирует участника. Роль admin может выдать только администратор.
func (s *User) CreateUser(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (string, error) {
	if userModify.Name == nil || userModify.Phone == nil {
		return "", ErrMissingRequiredFields
	}

	if userModify.Role == nil {
		role := entities.DefaultUserRole
		userModify.Role = &role
	}

	if !isValidName(*userModify.Name) {
		return "", ErrInvalidName
	}
	if !isValidPhone(*userModify.Phone) {
		return "", ErrInvalidPhone
	}
	if !userModify.Role.IsValid() {
		return "", ErrInvalidRole
	}
	if !isValidLocation(userModify.Location) {
		return "", ErrInvalidLocation
	}
	if *userModify.Role == entities.RoleAdmin && !actor.IsAdmin() {
		return "", fmt.Errorf("%w: only admin can register admins", ErrForbidden)
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// UpdateUser меняет профиль владельца. Чужой профиль и роль меняет только администратор.
func (s *User) UpdateUser(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || strings.TrimSpace(*userModify.ID) == "" {
		return nil, ErrInvalidUserID
	}

	if userModify.Name == nil &&
		userModify.Phone == nil &&
		userModify.Role == nil &&
		userModify.Location == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if userModify.Name != nil && !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if userModify.Phone != nil && !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if userModify.Role != nil && !userModify.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !isValidLocation(userModify.Location) {
		return nil, ErrInvalidLocation
	}
	if err := authorizeUpdate(actor, userModify); err != nil {
		return nil, err
	}

	user, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetUsers возвращает всех пользователей или только пользователей роли role.
func (s *User) GetUsers(ctx context.Context, role *entities.UserRole) ([]entities.User, error) {
	if role != nil && !role.IsValid() {
		return nil, ErrInvalidRole
	}

	users, err := s.repository.GetAll(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

func authorizeUpdate(actor entities.Actor, userModify entities.UserModify) error {
	if actor.IsAdmin() {
		return nil
	}
	if strings.TrimSpace(actor.UserID) == "" || actor.UserID != *userModify.ID {
		return fmt.Errorf("%w: profile belongs to another user", ErrForbidden)
	}
	if userModify.Role != nil {
		return fmt.Errorf("%w: only admin can change roles", ErrForbidden)
	}
	return nil
}
