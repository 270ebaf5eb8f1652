//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetAll(ctx context.Context, role *entities.UserRole) ([]entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}
