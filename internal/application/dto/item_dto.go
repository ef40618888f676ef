package dto

import "time"

// ItemRequest entrada para crear o actualizar un ítem de inventario.
// Ambos campos son obligatorios en las dos operaciones.
type ItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Type string `json:"type" validate:"required,min=1,max=100"`
}

// ItemResponse salida de un ítem de inventario.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CreatedDate time.Time `json:"created_date"`
	UserID      string    `json:"user_id"`
}
