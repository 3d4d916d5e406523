package controllers

import (
	"net/http"
	"testing"

	"github.com/lamanila-kanishka/pos-api/stores"
	"github.com/stretchr/testify/assert"
)

func TestGetSyncStatus(t *testing.T) {
	setupTestStores(t)
	router := setupTestRouter()
	router.GET("/sync/status", GetSyncStatus)

	w, response := performRequest(t, router, http.MethodGet, "/sync/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.True(t, data["online"].(bool))
	assert.Equal(t, float64(0), data["pending"])
}

func TestUpdateConnectivity_OfflineThenOnline(t *testing.T) {
	setupTestStores(t)
	router := setupTestRouter()
	router.PUT("/sync/connectivity", UpdateConnectivity)
	router.POST("/order/save", SaveOrder)

	// Go offline and save an order
	w, response := performRequest(t, router, http.MethodPut, "/sync/connectivity", map[string]interface{}{"online": false})
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.False(t, data["online"].(bool))

	item, _ := stores.GetMenuStore().FindItem(20)
	stores.GetOrderStore().AddItem(item)
	_, response = performRequest(t, router, http.MethodPost, "/order/save", nil)
	assert.True(t, response["data"].(map[string]interface{})["queued"].(bool))

	// Coming back online syncs the queue
	_, response = performRequest(t, router, http.MethodPut, "/sync/connectivity", map[string]interface{}{"online": true})
	data = response["data"].(map[string]interface{})
	assert.True(t, data["online"].(bool))
	assert.Equal(t, float64(1), data["synced"])
	assert.Equal(t, float64(0), data["pending"])
}

func TestUpdateConnectivity_NoQueueNothingSynced(t *testing.T) {
	setupTestStores(t)
	router := setupTestRouter()
	router.PUT("/sync/connectivity", UpdateConnectivity)

	_, response := performRequest(t, router, http.MethodPut, "/sync/connectivity", map[string]interface{}{"online": false})
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["synced"])

	_, response = performRequest(t, router, http.MethodPut, "/sync/connectivity", map[string]interface{}{"online": true})
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["synced"])
}

func TestUpdateConnectivity_MissingFlag(t *testing.T) {
	setupTestStores(t)
	router := setupTestRouter()
	router.PUT("/sync/connectivity", UpdateConnectivity)

	w, response := performRequest(t, router, http.MethodPut, "/sync/connectivity", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(response))
}

func TestGetOfflineOrders(t *testing.T) {
	setupTestStores(t)
	router := setupTestRouter()
	router.GET("/sync/queue", GetOfflineOrders)
	router.POST("/order/save", SaveOrder)

	stores.GetOfflineStore().SetOnline(false)
	item, _ := stores.GetMenuStore().FindItem(20)
	stores.GetOrderStore().AddItem(item)
	performRequest(t, router, http.MethodPost, "/order/save", nil)

	w, response := performRequest(t, router, http.MethodGet, "/sync/queue", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	queued := data[0].(map[string]interface{})
	assert.Contains(t, queued["id"], "ORD-")
	assert.Len(t, queued["items"], 1)
}
