package handlers

import (
	"net/http"

	"photoshare/internal/middleware"
)

type credentialsRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// FormView - view-model пустой формы для внешнего слоя отображения
type FormView struct {
	Form string `json:"form"`
}

// Index - GET /: аутентифицированных уводим на дашборд, остальным лендинг
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	WriteSuccess(w, FormView{Form: "index"}, http.StatusOK)
}

// Signup - GET/POST /signup: создание аккаунта и редирект на /login.
// Дубликаты имён не проверяются (поведение исходной системы)
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, FormView{Form: "signup"}, http.StatusOK)
		return
	}

	req := credentialsRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются имя пользователя и пароль", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.Signup(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login - GET/POST /login. Успех ставит сессионную куку и уводит на дашборд;
// неверные данные заново отдают форму без индикации ошибки (как в оригинале)
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, FormView{Form: "login"}, http.StatusOK)
		return
	}

	req := credentialsRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются имя пользователя и пароль", http.StatusBadRequest)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteSuccess(w, FormView{Form: "login"}, http.StatusOK)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.Cfg.SessionDuration.Seconds()),
	})

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout - GET /logout: сброс куки и редирект на лендинг
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}
