package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"github.com/unrolled/render"
)

type NotificationHandler struct {
	notificationRepo repositories.NotificationRepositoryImpl
	render           *render.Render
}

func NewNotificationHandler(notificationRepo repositories.NotificationRepositoryImpl, rnd *render.Render) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo, render: rnd}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	notifications, total, err := h.notificationRepo.GetAll(r.Context(), perPage, (page-1)*perPage)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	writeJSON(h.render, w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total":         total,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.notificationRepo.MarkRead(r.Context(), id); err != nil {
		writeError(h.render, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
