package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the database failed in a way we cannot
	// explain to the user. The underlying error is logged.
	ErrGeneral = errors.New("ocorreu um erro no servidor durante a sua requisição")

	// ErrNotFound is the base error for all "resource not found" errors.
	// Match with errors.Is.
	ErrNotFound = errors.New("recurso não encontrado")
)

// User errors
var (
	ErrEmailTaken         = errors.New("email já cadastrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrSalaryNegative     = errors.New("o salário não pode ser negativo")
)

// Validation errors shared by multiple resources
var (
	ErrMissingFields = errors.New("dados obrigatórios ausentes")
	ErrAmountInvalid = errors.New("valor inválido")
	ErrDateInvalid   = errors.New("data inválida")
	ErrMonthInvalid  = errors.New("mês inválido")
)

// FixedBill errors
var (
	ErrDueDayInvalid = errors.New("dia de vencimento inválido")
)

// Expense errors
var (
	ErrCategoryInvalid = errors.New("categoria inválida")
)

// InstallmentPlan errors
var (
	ErrInstallmentCountInvalid = errors.New("o número de parcelas deve ser maior que zero")
	ErrInstallmentsPaidInvalid = errors.New("as parcelas pagas não podem exceder o total de parcelas")
)

// notFoundError is a resource specific "not found" error. It matches
// ErrNotFound with errors.Is so that handlers can map all of them to
// HTTP 404 without knowing the resource.
type notFoundError struct {
	msg string
}

func (e notFoundError) Error() string { return e.msg }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

// Resource specific not found errors. The messages match the upstream API.
var (
	ErrUserNotFound        = notFoundError{"usuário não encontrado"}
	ErrFixedBillNotFound   = notFoundError{"conta fixa não encontrada"}
	ErrExpenseNotFound     = notFoundError{"gasto não encontrado"}
	ErrInstallmentNotFound = notFoundError{"parcelamento não encontrado"}
	ErrInvoiceNotFound     = notFoundError{"histórico não encontrado"}
)
