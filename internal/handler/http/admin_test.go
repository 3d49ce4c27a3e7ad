package http

import (
	"net/http"
	"testing"

	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUsers_ListsAccounts(t *testing.T) {
	router := newTestEnv().handler.Init()
	registerUser(t, router, "Jane Doe", "jane@example.com", "pw123456")
	registerUser(t, router, "Bob Roe", "bob@example.com", "pw654321")

	rec := doJSON(router, http.MethodGet, "/api/admin/users", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	decodeBody(t, rec, &users)
	assert.Len(t, users, 2)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "otp")
}

func TestAdminStats_Aggregates(t *testing.T) {
	env := newTestEnv()
	router := env.handler.Init()
	jane := registerUser(t, router, "Jane Doe", "jane@example.com", "pw123456")
	registerUser(t, router, "Bob Roe", "bob@example.com", "pw654321")

	env.repo.users["bob@example.com"].IsPremium = true
	rec := doJSON(router, http.MethodPost, "/api/auth/track-download", jane.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/admin/stats", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.AdminStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, models.AdminStats{TotalUsers: 2, PremiumUsers: 1, TotalDownloads: 1}, stats)
}
