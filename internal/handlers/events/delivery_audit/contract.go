//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_audit_test
package delivery_audit

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type AuditLog interface {
	Append(ctx context.Context, logModify entities.DeliveryLogModify) (*entities.DeliveryLog, error)
}
