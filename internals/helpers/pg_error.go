// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPGError menerjemahkan SQLSTATE Postgres ke pesan yang ramah user.
// 23505 unique_violation, 23503 foreign_key_violation, 08xxx connection errors.
func MapPGError(err error) (int, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fiber.StatusConflict, "Data dengan nilai yang sama sudah ada."
		case "23503":
			return fiber.StatusBadRequest, "Referensi data tidak ditemukan."
		case "23514":
			return fiber.StatusBadRequest, "Data melanggar aturan validasi di database."
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return fiber.StatusServiceUnavailable, "Tidak dapat terhubung ke database. Coba lagi sebentar."
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

// WritePGError: shortcut controller untuk error data-layer.
func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
