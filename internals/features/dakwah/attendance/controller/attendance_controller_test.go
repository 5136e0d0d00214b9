package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAttendanceTestApp: controller tanpa DB — cukup untuk jalur yang
// gagal di validasi param sebelum menyentuh database.
func newAttendanceTestApp() *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	ctrl := NewAttendanceController(nil)
	app.Get("/attendance/:activity_id/sheet", ctrl.GetSheet)
	app.Get("/attendance/:activity_id/attendees", ctrl.GetAttendees)
	app.Post("/attendance/:activity_id", ctrl.Save)
	return app
}

// ID kegiatan yang bukan UUID harus berakhir 400, bukan panic yang
// diselamatkan recovery jadi 500.
func TestAttendance_InvalidActivityIDIsBadRequest(t *testing.T) {
	app := newAttendanceTestApp()

	for _, tc := range []struct {
		name   string
		method string
		path   string
	}{
		{"sheet", "GET", "/attendance/bukan-uuid/sheet"},
		{"attendees", "GET", "/attendance/bukan-uuid/attendees"},
		{"save", "POST", "/attendance/bukan-uuid"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
