package confirmation_code

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const (
	minCode = 1000
	maxCode = 9999
)

// CodeFactory выдает 4-значные коды подтверждения, равномерно в [1000, 9999].
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

func (f *CodeFactory) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("generate confirmation code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}
