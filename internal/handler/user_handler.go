package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"photoshare/internal/middleware"
	"photoshare/internal/models"
)

type profileFormRequest struct {
	Instructions string `validate:"required"`
	Interests    string `validate:"required"`
}

type ProfileResponse struct {
	User   *models.User   `json:"user"`
	Photos []models.Photo `json:"photos"`
}

type UserListResponse struct {
	Users         []models.UserListEntry `json:"users"`
	SearchKeyword string                 `json:"searchKeyword,omitempty"`
}

// Profile - GET/POST /profile: свой профиль и свои фотографии.
// POST обновляет instructions/interests и, как в оригинале, отдает профиль
// заново вместо редиректа
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		req := profileFormRequest{
			Instructions: r.FormValue("instructions"),
			Interests:    r.FormValue("interests"),
		}

		if err := h.Validate.Struct(req); err != nil {
			WriteError(w, "Требуются instructions и interests", http.StatusBadRequest)
			return
		}

		if err := h.UserService.UpdateProfile(r.Context(), identity.UserID, req.Instructions, req.Interests); err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	user, err := h.UserRepo.GetByID(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	photos, err := h.PhotoRepo.GetByUserID(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, ProfileResponse{User: user, Photos: photos}, http.StatusOK)
}

// UserProfile - GET /user_profile/{username}: публичный профиль без авторизации.
// Промах отдается простым текстом, как в исходной системе
func (h *Handlers) UserProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.UserRepo.GetByUsername(r.Context(), username)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("User not found"))
		return
	}

	photos, err := h.PhotoRepo.GetByUserID(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, ProfileResponse{User: user, Photos: photos}, http.StatusOK)
}

// UserList - GET/POST /user_list: все аккаунты либо фильтр по подстроке имени.
// Пустая строка поиска - валидный запрос: LIKE '%%' возвращает всех
func (h *Handlers) UserList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			WriteError(w, "Неверный формат формы", http.StatusBadRequest)
			return
		}

		values, ok := r.PostForm["search_keyword"]
		if !ok {
			WriteError(w, "Требуется строка поиска", http.StatusBadRequest)
			return
		}
		keyword := values[0]

		users, err := h.UserRepo.Search(r.Context(), keyword)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		WriteSuccess(w, UserListResponse{Users: users, SearchKeyword: keyword}, http.StatusOK)
		return
	}

	users, err := h.UserRepo.List(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, UserListResponse{Users: users}, http.StatusOK)
}
