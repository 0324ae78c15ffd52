package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	conn := setupTest(t)
	r := router.NewRouter()

	_, clientCookie := createUserWithRoles(t, conn, "Client", models.RoleClient)
	_, adminCookie := createUserWithRoles(t, conn, "Admin", models.RoleAdmin)

	rec := doRequest(t, r, http.MethodGet, "/admin/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/admin/orders", "", clientCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/admin/orders", "", adminCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExecutorRoutesAllowExecutorAndAdmin(t *testing.T) {
	conn := setupTest(t)
	r := router.NewRouter()

	_, clientCookie := createUserWithRoles(t, conn, "Client", models.RoleClient)
	_, executorCookie := createUserWithRoles(t, conn, "Worker", models.RoleExecutor)
	_, adminCookie := createUserWithRoles(t, conn, "Admin", models.RoleAdmin)

	rec := doRequest(t, r, http.MethodGet, "/executor/index", "", clientCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/executor/index", "", executorCookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/executor/index", "", adminCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetExecutorEndpoint(t *testing.T) {
	conn := setupTest(t)
	r := router.NewRouter()

	_, adminCookie := createUserWithRoles(t, conn, "Admin", models.RoleAdmin)
	worker, _ := createUserWithRoles(t, conn, "Worker", models.RoleExecutor)
	client, _ := createUserWithRoles(t, conn, "Client", models.RoleClient)

	order := models.Order{UserID: client.ID}
	require.NoError(t, conn.Create(&order).Error)

	path := fmt.Sprintf("/admin/set-executor-order/%d/%d", order.ID, worker.ID)

	rec := doRequest(t, r, http.MethodPost, path, "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())

	// duplicate assignment answers false
	rec = doRequest(t, r, http.MethodPost, path, "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", rec.Body.String())

	// assigning a non-executor answers false
	badPath := fmt.Sprintf("/admin/set-executor-order/%d/%d", order.ID, client.ID)
	rec = doRequest(t, r, http.MethodPost, badPath, "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", rec.Body.String())

	revokePath := fmt.Sprintf("/admin/revoke-executor-order/%d/%d", order.ID, worker.ID)
	rec = doRequest(t, r, http.MethodPost, revokePath, "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, revokePath, "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", rec.Body.String())
}

func TestGrantRoleEndpoint(t *testing.T) {
	conn := setupTest(t)
	r := router.NewRouter()

	_, adminCookie := createUserWithRoles(t, conn, "Admin", models.RoleAdmin)
	worker, _ := createUserWithRoles(t, conn, "Worker")

	var executorRole models.Role
	require.NoError(t, conn.Where("name = ?", models.RoleExecutor).First(&executorRole).Error)

	body := fmt.Sprintf(`{"userId": %d, "roleId": %d}`, worker.ID, executorRole.ID)

	rec := doRequest(t, r, http.MethodPost, "/admin/grantRole", body, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Result string `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "created", result.Result)

	rec = doRequest(t, r, http.MethodPost, "/admin/grantRole", body, adminCookie)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "existed", result.Result)

	rec = doRequest(t, r, http.MethodPost, "/admin/revokeRole", body, adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())
}

func TestAdminListOrdersFilters(t *testing.T) {
	conn := setupTest(t)
	r := router.NewRouter()

	_, adminCookie := createUserWithRoles(t, conn, "Admin", models.RoleAdmin)
	client, _ := createUserWithRoles(t, conn, "Client", models.RoleClient)

	var done models.Status
	require.NoError(t, conn.Where("name = ?", "done").First(&done).Error)

	require.NoError(t, conn.Create(&models.Order{UserID: client.ID}).Error)
	require.NoError(t, conn.Create(&models.Order{UserID: client.ID, StatusID: &done.ID}).Error)

	rec := doRequest(t, r, http.MethodGet, "/admin/orders?statusId=new", "", adminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Orders struct {
			Items []struct {
				Status string `json:"status"`
			} `json:"items"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Orders.Items, 1)
	assert.Equal(t, "new", listing.Orders.Items[0].Status)

	rec = doRequest(t, r, http.MethodGet, "/admin/orders", "", adminCookie)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Len(t, listing.Orders.Items, 2)
}
