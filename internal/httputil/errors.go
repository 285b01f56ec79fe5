package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("JSON inválido ou ausente")
	ErrRequestBodyEmpty = errors.New("o corpo da requisição não pode estar vazio")
)
