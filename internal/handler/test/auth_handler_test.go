package test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"photoshare/internal/middleware"
	"photoshare/internal/models"
)

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndexHandler_Anonymous(t *testing.T) {
	handler, _ := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.Index(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "index", response["form"])
}

func TestIndexHandler_Authenticated(t *testing.T) {
	handler, _ := createTestHandler()

	req := authenticate(httptest.NewRequest(http.MethodGet, "/", nil), 1, "alice")
	rr := httptest.NewRecorder()

	handler.Index(rr, req)

	assertRedirect(t, rr, "/dashboard")
}

func TestSignupHandler_Success(t *testing.T) {
	// Arrange
	handler, m := createTestHandler()
	m.auth.On("Signup", mock.Anything, "alice", "pw1").Return(nil)

	req := postForm("/signup", url.Values{"username": {"alice"}, "password": {"pw1"}})
	rr := httptest.NewRecorder()

	// Act
	handler.Signup(rr, req)

	// Assert
	assertRedirect(t, rr, "/login")
	m.auth.AssertExpectations(t)
}

func TestSignupHandler_MissingFields(t *testing.T) {
	handler, m := createTestHandler()

	req := postForm("/signup", url.Values{"username": {"alice"}})
	rr := httptest.NewRecorder()

	handler.Signup(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Требуются имя пользователя и пароль")
	m.auth.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignupHandler_GetRendersForm(t *testing.T) {
	handler, _ := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	rr := httptest.NewRecorder()

	handler.Signup(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "signup", response["form"])
}

func TestLoginHandler_Success(t *testing.T) {
	// Arrange
	handler, m := createTestHandler()
	user := &models.User{ID: 1, Username: "alice", Password: "pw1"}
	m.auth.On("Login", mock.Anything, "alice", "pw1").Return(user, "token-123", nil)

	req := postForm("/login", url.Values{"username": {"alice"}, "password": {"pw1"}})
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert
	assertRedirect(t, rr, "/dashboard")

	cookies := rr.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.SessionCookieName {
			sessionCookie = c
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.Equal(t, "token-123", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginHandler_WrongCredentials(t *testing.T) {
	// Arrange
	handler, m := createTestHandler()
	m.auth.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, "", errors.New("неверное имя пользователя или пароль"))

	req := postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	rr := httptest.NewRecorder()

	// Act
	handler.Login(rr, req)

	// Assert: форма отдается заново без куки и без индикации ошибки
	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "login", response["form"])
	assert.Empty(t, rr.Result().Cookies())
}

func TestLoginHandler_MissingFields(t *testing.T) {
	handler, m := createTestHandler()

	req := postForm("/login", url.Values{"password": {"pw1"}})
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Требуются имя пользователя и пароль")
	m.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	handler, _ := createTestHandler()

	req := authenticate(httptest.NewRequest(http.MethodGet, "/logout", nil), 1, "alice")
	rr := httptest.NewRecorder()

	handler.Logout(rr, req)

	assertRedirect(t, rr, "/")

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
