package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseLimit membaca ?limit= untuk leaderboard/report.
// 0 artinya tanpa batas; nilai negatif/invalid dinormalisasi ke 0.
func ParseLimit(c *fiber.Ctx, maxLimit int) int {
	v := strings.TrimSpace(c.Query("limit"))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	if maxLimit > 0 && n > maxLimit {
		return maxLimit
	}
	return n
}

// ParseUintParam membaca path param :name sebagai uint.
func ParseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return uint(n), nil
}

// ParseDateQuery membaca query tanggal format YYYY-MM-DD. Kosong → nil.
func ParseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Format tanggal "+name+" harus YYYY-MM-DD")
	}
	return &t, nil
}
