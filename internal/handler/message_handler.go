package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"photoshare/internal/middleware"
	"photoshare/internal/models"
)

type MessagesResponse struct {
	ChatUsers    []models.ChatUser          `json:"chatUsers"`
	Messages     []models.MessageWithSender `json:"messages"`
	ChatUserID   int                        `json:"chatUserId,omitempty"`
	ChatUserName string                     `json:"chatUserName,omitempty"`
}

// Messages - GET /messages: список собеседников; с параметром chat_user_id
// дополнительно загружается тред с выбранным собеседником
func (h *Handlers) Messages(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	chatUsers, err := h.MessageRepo.GetChatUsers(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := MessagesResponse{ChatUsers: chatUsers}

	if rawID := r.URL.Query().Get("chat_user_id"); rawID != "" {
		chatUserID, err := strconv.Atoi(rawID)
		if err != nil {
			WriteError(w, "Неверный ID собеседника", http.StatusBadRequest)
			return
		}

		messages, err := h.MessageRepo.GetThread(r.Context(), identity.UserID, chatUserID)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		chatUser, err := h.UserRepo.GetByID(r.Context(), chatUserID)
		if err != nil {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}

		response.Messages = messages
		response.ChatUserID = chatUserID
		response.ChatUserName = chatUser.Username
	}

	WriteSuccess(w, response, http.StatusOK)
}

// SendMessage - POST /send_message: вставка сообщения и редирект в тред получателя
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	receiverID, err := strconv.Atoi(r.FormValue("receiver_id"))
	if err != nil {
		WriteError(w, "Неверный ID получателя", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	if content == "" {
		WriteError(w, "Требуется текст сообщения", http.StatusBadRequest)
		return
	}

	if err := h.MessageService.Send(r.Context(), identity.UserID, receiverID, content); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/messages?chat_user_id="+strconv.Itoa(receiverID), http.StatusFound)
}

// DeleteMessage - POST /delete_message/{message_id}: удаление по id без
// проверки принадлежности (пробел исходной системы сохранен); возврат
// на страницу-источник либо в список переписок
func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.Atoi(mux.Vars(r)["message_id"])
	if err != nil {
		WriteError(w, "Неверный ID сообщения", http.StatusBadRequest)
		return
	}

	if err := h.MessageService.Delete(r.Context(), messageID); err != nil {
		if strings.Contains(err.Error(), "не найдено") {
			WriteError(w, err.Error(), http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	target := r.Referer()
	if target == "" {
		target = "/messages"
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// SendPostMessage - POST /send_post_message/{post_id}: сообщение владельцу
// фотографии; самому себе молча не отправляется, редирект в любом случае
// ведет на дашборд
func (h *Handlers) SendPostMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	postID, err := strconv.Atoi(mux.Vars(r)["post_id"])
	if err != nil {
		WriteError(w, "Неверный ID поста", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	if content == "" {
		WriteError(w, "Требуется текст сообщения", http.StatusBadRequest)
		return
	}

	if _, err := h.MessageService.SendPostMessage(r.Context(), identity.UserID, postID, content); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
