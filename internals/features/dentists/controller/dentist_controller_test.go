package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"odontocare_backend/internals/constants"
	helper "odontocare_backend/internals/helpers"
	"odontocare_backend/internals/middlewares/auth"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newTestApp(db *gorm.DB, role string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_id", uuid.NewString())
			c.Locals("role", role)
		}
		return c.Next()
	})

	ctrl := NewDentistController(db)
	gate := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("dentist management"),
		constants.AdminOnly,
	)
	dentists := app.Group("/api/a/dentists", gate)
	dentists.Get("/", ctrl.Index)
	dentists.Get("/new", ctrl.New)
	dentists.Post("/", ctrl.Create)
	dentists.Get("/:id/edit", ctrl.Edit)
	dentists.Put("/:id", ctrl.Update)
	dentists.Delete("/:id", ctrl.Delete)
	dentists.Get("/:id", ctrl.Details)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestCreateDentistWithSlots(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	dentistID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "dentists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(dentistID.String()))
	mock.ExpectQuery(`INSERT INTO "dentist_availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(uuid.NewString()).
			AddRow(uuid.NewString()))
	mock.ExpectCommit()

	body := `{
		"name": "Dr. Helena Souza",
		"tax_id": "12345678901",
		"license_number": "CRO-12345",
		"email": "helena@example.com",
		"phone": "+55 11 99999-0000",
		"availabilities": [
			{"weekday":"Monday","start_time":"08:00","end_time":"12:00","selected":true},
			{"weekday":"Wednesday","start_time":"14:00","end_time":"18:00","selected":true}
		]
	}`
	resp, parsed := doRequest(t, app, http.MethodPost, "/api/a/dentists/", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Dentist registered", parsed["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDentistWithoutSlots(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "dentists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	body := `{
		"name": "Dr. Igor Lima",
		"tax_id": "98765432100",
		"license_number": "CRO-54321",
		"email": "igor@example.com"
	}`
	resp, _ := doRequest(t, app, http.MethodPost, "/api/a/dentists/", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDentistValidationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	body := `{"name": "", "tax_id": "", "license_number": "", "email": "not-an-email"}`
	resp, parsed := doRequest(t, app, http.MethodPost, "/api/a/dentists/", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", parsed["message"])

	fieldErrors := parsed["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "Name")
	assert.Contains(t, fieldErrors, "TaxID")
	assert.Contains(t, fieldErrors, "LicenseNumber")
	assert.Contains(t, fieldErrors, "Email")

	// validation failed before any persistence
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditPrefillsSelectedSlots(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "dentists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tax_id", "license_number", "email", "schedule_id"}).
			AddRow(id.String(), "Dr. Julia Prado", "12345678901", "CRO-11111", "julia@example.com", nil))
	mock.ExpectQuery(`SELECT \* FROM "dentist_availabilities" WHERE "dentist_availabilities"."dentist_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dentist_id", "weekday", "start_time", "end_time"}).
			AddRow(uuid.NewString(), id.String(), "Monday", "08:00", "12:00").
			AddRow(uuid.NewString(), id.String(), "Wednesday", "14:00", "18:00"))
	mock.ExpectQuery(`SELECT \* FROM "work_schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.NewString(), "Morning shift"))

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/a/dentists/"+id.String()+"/edit", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	options := data["availability_options"].([]interface{})
	require.Len(t, options, 12)

	selected := map[string]bool{}
	for _, raw := range options {
		o := raw.(map[string]interface{})
		if o["selected"].(bool) {
			selected[o["weekday"].(string)+" "+o["start_time"].(string)] = true
		}
	}
	assert.Len(t, selected, 2)
	assert.True(t, selected["Monday 08:00"])
	assert.True(t, selected["Wednesday 14:00"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReplacesSlotsAtomically(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "dentists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tax_id", "license_number", "email", "created_at"}).
			AddRow(id.String(), "Dr. Karen Dias", "11122233344", "CRO-22222", "karen@example.com", time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dentists" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "dentist_availabilities"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO "dentist_availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	body := `{
		"name": "Dr. Karen Dias",
		"tax_id": "11122233344",
		"license_number": "CRO-22222",
		"email": "karen@example.com",
		"availabilities": [
			{"weekday":"Friday","start_time":"14:00","end_time":"18:00","selected":true}
		]
	}`
	resp, parsed := doRequest(t, app, http.MethodPut, "/api/a/dentists/"+id.String(), body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dentist updated", parsed["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingDentistIsSilentNoop(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	mock.ExpectQuery(`SELECT \* FROM "dentists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, parsed := doRequest(t, app, http.MethodDelete, "/api/a/dentists/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dentist removed", parsed["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	mock.ExpectQuery(`SELECT \* FROM "dentists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/a/dentists/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Dentist not found", parsed["message"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndexDeniedForNonAdmin(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleGuardian)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/a/dentists/", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, parsed["message"], "Only administrators")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewFormReturnsTemplate(t *testing.T) {
	db, mock := newTestDB(t)
	app := newTestApp(db, constants.RoleAdmin)

	mock.ExpectQuery(`SELECT \* FROM "work_schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uuid.NewString(), "Weekday mornings"))

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/a/dentists/new", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := parsed["data"].(map[string]interface{})
	options := data["availability_options"].([]interface{})
	assert.Len(t, options, 12)
	for _, raw := range options {
		assert.False(t, raw.(map[string]interface{})["selected"].(bool))
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
