package entity

import "time"

// Item representa un ítem de inventario: contenedor con nombre y tipo de los
// productos de un único dueño.
type Item struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UserID    string
}
