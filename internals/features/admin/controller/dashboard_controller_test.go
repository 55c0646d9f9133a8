package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
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

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestDashboardCounts(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "guardians"`).WillReturnRows(countRows(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "children"`).WillReturnRows(countRows(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "dentists"`).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).WillReturnRows(countRows(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_applications"`).WillReturnRows(countRows(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "volunteer_applications" WHERE seen = \$1`).WillReturnRows(countRows(2))

	app := fiber.New()
	app.Get("/api/u/dashboard", NewDashboardController(db).Dashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/u/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	data := parsed["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["total_guardians"])
	assert.EqualValues(t, 7, data["total_children"])
	assert.EqualValues(t, 3, data["total_dentists"])
	assert.EqualValues(t, 12, data["total_appointments"])
	assert.EqualValues(t, 5, data["total_volunteer_applications"])
	assert.EqualValues(t, 2, data["unseen_volunteer_applications"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardCountFailure(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "guardians"`).
		WillReturnError(assert.AnError)

	app := fiber.New()
	app.Get("/api/u/dashboard", NewDashboardController(db).Dashboard)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/u/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
