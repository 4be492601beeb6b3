//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import "github.com/jichangee/ai-chat/internal/model"

type TokenValidator interface {
	Validate(token string) (*model.SessionClaims, error)
}

type HTTPMetrics interface {
	HTTPRequest(method string, status int)
}
