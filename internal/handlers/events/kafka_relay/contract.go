//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=kafka_relay_test
package kafka_relay

import (
	"context"
)

type Producer interface {
	Publish(ctx context.Context, key string, value []byte) error
}
