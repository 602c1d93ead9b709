package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"photoshare/internal/middleware"
	"photoshare/internal/models"
)

type photoFormRequest struct {
	Description string `validate:"required"`
	Keywords    string `validate:"required"`
}

type DashboardResponse struct {
	Photos []models.PhotoWithOwner `json:"photos"`
}

type EditPostResponse struct {
	Photo *models.Photo `json:"photo"`
}

type SearchResponse struct {
	Keyword string         `json:"keyword"`
	Photos  []models.Photo `json:"photos"`
}

// Dashboard - GET /dashboard: вся лента с именами владельцев
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	photos, err := h.PhotoRepo.GetAllWithOwner(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, DashboardResponse{Photos: photos}, http.StatusOK)
}

// Upload - GET/POST /upload: сохранение файла и создание записи фотографии
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		WriteSuccess(w, FormView{Form: "upload"}, http.StatusOK)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат формы загрузки", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Требуется файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	req := photoFormRequest{
		Description: r.FormValue("description"),
		Keywords:    r.FormValue("keywords"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются описание и ключевые слова", http.StatusBadRequest)
		return
	}

	err = h.PhotoService.Upload(r.Context(), identity.UserID, header.Filename, file, header.Size, req.Description, req.Keywords)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// EditPost - GET/POST /edit_post/{post_id}. Файл в форме опционален: без него
// обновляются только описание и ключевые слова. Проверки владельца нет -
// пробел авторизации исходной системы сохранен сознательно
func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["post_id"])
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodGet {
		photo, err := h.PhotoRepo.GetByID(r.Context(), postID)
		if err != nil {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}

		WriteSuccess(w, EditPostResponse{Photo: photo}, http.StatusOK)
		return
	}

	// форма может прийти и без файла, ошибку разбора multipart не считаем фатальной
	_ = r.ParseMultipartForm(h.Cfg.MaxUploadSize)

	req := photoFormRequest{
		Description: r.FormValue("description"),
		Keywords:    r.FormValue("keywords"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются описание и ключевые слова", http.StatusBadRequest)
		return
	}

	var (
		reader   io.Reader
		fileName string
		size     int64
	)

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		reader = file
		fileName = header.Filename
		size = header.Size
	}

	err = h.PhotoService.Edit(r.Context(), postID, fileName, reader, size, req.Description, req.Keywords)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusFound)
}

// DeletePost - POST /delete_post/{post_id}: строка БД удаляется первой,
// файл убирается best-effort. Проверки владельца нет (как в оригинале)
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["post_id"])
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	err = h.PhotoService.Delete(r.Context(), postID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusFound)
}

// Search - GET/POST /search: подстрочный поиск по ключевым словам фотографий
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, FormView{Form: "search"}, http.StatusOK)
		return
	}

	keyword := r.FormValue("keyword")
	if keyword == "" {
		WriteError(w, "Требуется ключевое слово", http.StatusBadRequest)
		return
	}

	photos, err := h.PhotoRepo.SearchByKeyword(r.Context(), keyword)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, SearchResponse{Keyword: keyword, Photos: photos}, http.StatusOK)
}

// ServeUpload - GET /uploads/{filename}: отдает сохраненный файл фотографии
func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["filename"]

	f, err := h.FileStore.Open(r.Context(), fileName)
	if err != nil {
		WriteError(w, "Файл не найден", http.StatusNotFound)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, f); err != nil {
		// заголовки уже ушли, менять статус поздно
		return
	}
}
