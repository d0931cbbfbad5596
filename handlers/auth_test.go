package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	token := registerTestUser(t, app, "alice")

	// The token works against an authenticated route
	resp, body := doJSON(t, app, "GET", "/api/users/me", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	require.Equal(t, "alice", user["username"])

	// Login with the same credentials
	resp, body = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, 200, resp.StatusCode)
	require.NotEmpty(t, body["token"])
}

func TestRegisterDuplicateConflict(t *testing.T) {
	app, _ := newTestApp(t)

	registerTestUser(t, app, "alice")

	resp, body := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "different@example.com",
		"password": "secret123",
	})
	require.Equal(t, 409, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "abc",
	})
	require.Equal(t, 400, resp.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	registerTestUser(t, app, "alice")

	// Wrong password and unknown user produce the same response
	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, 401, resp.StatusCode)

	resp2, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "secret123",
	})
	require.Equal(t, 401, resp2.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/users/me", "", nil)
	require.Equal(t, 401, resp.StatusCode)
}
