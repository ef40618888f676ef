package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tu-usuario/inventario-micro/pkg/config"
)

// Aplica las migraciones SQL de ./migrations sobre la base configurada.
// Las tres tablas viven en el mismo esquema pero sin claves foráneas entre
// servicios: cada binario puede apuntar su DATABASE_URL a una base propia y
// aplicar las mismas migraciones.
func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "migrations-path", "./migrations", "ruta a las migraciones")
	flag.Parse()

	cfg, err := config.Load("migrator", 0)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.DB.ConnectionString())
	if err != nil {
		panic(err)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("sin migraciones pendientes")
			return
		}
		panic(err)
	}

	fmt.Println("migraciones aplicadas")
}
