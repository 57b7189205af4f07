package purchasing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de compras
var (
	// Erros de entrada rejeitados antes de qualquer acesso ao banco
	ErrNoClientSelected = errors.New("no client selected")
	ErrNoAmountEntered  = errors.New("no amount entered")
	ErrInvalidAmount    = errors.New("invalid purchase amount")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("error generating ID")
)

// PurchaseError é um erro com contexto adicional para compras
type PurchaseError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PurchaseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// NewPurchaseError cria um novo PurchaseError
func NewPurchaseError(err error, code string, details string) *PurchaseError {
	return &PurchaseError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
