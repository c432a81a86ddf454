// seed puebla la base de datos con los catálogos iniciales y los usuarios
// de prueba. Es idempotente: usa ON CONFLICT DO NOTHING, por lo que puede
// ejecutarse varias veces sin duplicar datos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbastiane/conteo-api/internal/infrastructure/postgres"
	"github.com/sbastiane/conteo-api/pkg/config"
)

type seedWarehouse struct {
	code, description, status string
}

type seedProduct struct {
	code, description, packagingUnit string
	conversionFactor                 int
}

type seedUser struct {
	identification, name, password, role string
	warehouses                           []string
}

var (
	warehouses = []seedWarehouse{
		{"00009", "Cereté", "ACTIVE"},
		{"00014", "Central", "ACTIVE"},
		{"00006", "Valledupar", "ACTIVE"},
		{"00090", "Maicao", "INACTIVE"},
	}

	products = []seedProduct{
		{"4779", "ATUN TRIPACK LA SOBERANA ACTE 80 GRM", "CAJA", 12},
		{"4266", "HARINA AREPA REPA BLANCA 500G X24", "ARROBA", 24},
		{"4442", "HARINA LA SOBERANA BLANCA 500G X24", "ARROBA", 24},
	}

	users = []seedUser{
		{"12345678", "Administrador Sistema", "admin123", "ADMIN", nil},
		{"80299534", "Juan Esteban Arango", "user123", "USER", []string{"00009"}},
		{"43997553", "Manuel Francisco Grajales", "user123", "USER", []string{"00006", "00090"}},
		{"25776298", "Santiago Francisco Martinez", "user123", "USER", []string{"00014"}},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	for _, w := range warehouses {
		_, err := pool.Exec(ctx, `
			INSERT INTO warehouses (code, description, status)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING`,
			w.code, w.description, w.status)
		if err != nil {
			fail("insertar bodega %s: %v", w.code, err)
		}
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (code, description, packaging_unit, conversion_factor)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (code) DO NOTHING`,
			p.code, p.description, p.packagingUnit, p.conversionFactor)
		if err != nil {
			fail("insertar producto %s: %v", p.code, err)
		}
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hashear password de %s: %v", u.identification, err)
		}

		// Recupera el ID si el usuario ya existe; si no, lo crea.
		var userID string
		err = pool.QueryRow(ctx,
			`SELECT id FROM users WHERE identification = $1`, u.identification).Scan(&userID)
		if err != nil {
			userID = uuid.New().String()
			_, err = pool.Exec(ctx, `
				INSERT INTO users (id, identification, name, password, role)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (identification) DO NOTHING`,
				userID, u.identification, u.name, string(hash), u.role)
			if err != nil {
				fail("insertar usuario %s: %v", u.identification, err)
			}
		}

		for _, code := range u.warehouses {
			_, err := pool.Exec(ctx, `
				INSERT INTO user_warehouses (user_id, warehouse_code)
				VALUES ($1, $2)
				ON CONFLICT (user_id, warehouse_code) DO NOTHING`,
				userID, code)
			if err != nil {
				fail("asignar bodega %s a %s: %v", code, u.identification, err)
			}
		}
	}

	fmt.Println("Base de datos poblada correctamente")
	fmt.Println("Admin: 12345678 / admin123")
	fmt.Println("User1: 80299534 / user123 (Bodega: Cereté)")
	fmt.Println("User2: 43997553 / user123 (Bodegas: Valledupar, Maicao)")
	fmt.Println("User3: 25776298 / user123 (Bodega: Central)")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
