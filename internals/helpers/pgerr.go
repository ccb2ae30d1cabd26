package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr dicocokkan via interface supaya tidak perlu import driver
// (pgconn.PgError punya method SQLState).
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError memetakan SQLSTATE Postgres ke status + pesan:
// 23505 unique_violation, 23503 foreign_key_violation.
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return fiber.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

// WritePGError menulis hasil MapPGError sebagai response JSON.
func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return Error(c, code, msg)
}
