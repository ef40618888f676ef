package dto

// YearlyResponse mapa mes → productos de ese mes, ordenados por fecha
// descendente. Siempre trae las doce claves; un mes sin datos (o cuyo fetch
// falló) lleva lista vacía.
type YearlyResponse map[int][]ProductResponse
