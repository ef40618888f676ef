package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen a
// códigos HTTP; los clientes HTTP traducen códigos de los pares a estos mismos
// errores para que los usecases no distingan local de remoto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrMissingToken       = errors.New("token faltante")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUpstream           = errors.New("error del servicio remoto")
)
