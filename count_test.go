package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"inventario-api/models"

	"github.com/stretchr/testify/assert"
)

func decodeSchedules(t *testing.T, envelope apiResponse) []models.CountSchedule {
	t.Helper()
	var schedules []models.CountSchedule
	assert.NoError(t, json.Unmarshal(envelope.Data, &schedules))
	return schedules
}

func TestPendingCountsPagination(t *testing.T) {
	db := setupTestDB()
	createTestItems(db, 45)
	app := setupTestApp(db)

	resp, envelope := performRequest(app, http.MethodGet, "/inventario/conteos-pendientes?limit=5&page=1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Ok)

	// índices 0,3,...,42 → 15 programados entre los 45 artículos
	assert.Equal(t, 15, envelope.TotalDocumentos)
	assert.Equal(t, 3, envelope.TotalPaginas)
	assert.Equal(t, 1, envelope.PaginaActual)

	schedules := decodeSchedules(t, envelope)
	assert.Len(t, schedules, 5)
	for _, schedule := range schedules {
		assert.Equal(t, models.CountStatusScheduled, schedule.Status)
	}
}

func TestAllCountsIsUnionOfStatuses(t *testing.T) {
	db := setupTestDB()
	createTestItems(db, 45)
	app := setupTestApp(db)

	_, allEnvelope := performRequest(app, http.MethodGet, "/inventario/conteos-todos?limit=50&page=1", nil)
	_, pendingEnvelope := performRequest(app, http.MethodGet, "/inventario/conteos-pendientes?limit=50&page=1", nil)
	_, finishedEnvelope := performRequest(app, http.MethodGet, "/inventario/conteos-finalizados?limit=50&page=1", nil)

	all := decodeSchedules(t, allEnvelope)
	pending := decodeSchedules(t, pendingEnvelope)
	finished := decodeSchedules(t, finishedEnvelope)

	assert.Equal(t, 45, allEnvelope.TotalDocumentos)
	assert.Equal(t, 15, pendingEnvelope.TotalDocumentos)
	assert.Equal(t, 15, finishedEnvelope.TotalDocumentos)

	seen := map[uint]string{}
	for _, schedule := range all {
		seen[schedule.ID] = schedule.Status
	}
	for _, schedule := range pending {
		assert.Equal(t, models.CountStatusScheduled, seen[schedule.ID])
	}
	for _, schedule := range finished {
		assert.Equal(t, models.CountStatusCompleted, seen[schedule.ID])
	}

	cancelled := 0
	for _, status := range seen {
		if status == models.CountStatusCancelled {
			cancelled++
		}
	}
	assert.Equal(t, len(all), len(pending)+len(finished)+cancelled)
}

func TestFinishedCountsCarryDifference(t *testing.T) {
	db := setupTestDB()
	createTestItems(db, 9)
	app := setupTestApp(db)

	_, finishedEnvelope := performRequest(app, http.MethodGet, "/inventario/conteos-finalizados?limit=50&page=1", nil)
	_, pendingEnvelope := performRequest(app, http.MethodGet, "/inventario/conteos-pendientes?limit=50&page=1", nil)

	for _, schedule := range decodeSchedules(t, finishedEnvelope) {
		assert.NotNil(t, schedule.FinishedAt)
		if assert.Len(t, schedule.Details, 1) {
			assert.NotNil(t, schedule.Details[0].Difference)
		}
	}
	for _, schedule := range decodeSchedules(t, pendingEnvelope) {
		assert.Nil(t, schedule.FinishedAt)
		if assert.Len(t, schedule.Details, 1) {
			assert.Nil(t, schedule.Details[0].Difference)
		}
	}
}

func TestCountsDetailIncludesItemAndLocation(t *testing.T) {
	db := setupTestDB()
	createTestItems(db, 3)
	app := setupTestApp(db)

	_, envelope := performRequest(app, http.MethodGet, "/inventario/conteos-todos", nil)
	schedules := decodeSchedules(t, envelope)
	assert.Len(t, schedules, 3)

	for _, schedule := range schedules {
		if assert.Len(t, schedule.Details, 1) {
			detail := schedule.Details[0]
			if assert.NotNil(t, detail.Item) {
				assert.NotEmpty(t, detail.Item.Sku)
			}
			assert.NotNil(t, detail.Location)
		}
	}
}

func TestCountsOutOfRangePageReturnsEmptyArray(t *testing.T) {
	db := setupTestDB()
	createTestItems(db, 3)
	app := setupTestApp(db)

	resp, envelope := performRequest(app, http.MethodGet, "/inventario/conteos-todos?limit=10&page=99", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Ok)
	assert.Equal(t, "[]", string(envelope.Data))
	assert.Equal(t, 3, envelope.TotalDocumentos)
}
