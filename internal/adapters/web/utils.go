package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// offerIDParam читает положительный {id} из пути.
func offerIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// favoriteStatusParam читает {status}: "1" - добавить в избранное, "0" - убрать.
func favoriteStatusParam(r *http.Request) (bool, bool) {
	switch chi.URLParam(r, "status") {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}

// redirectBack возвращает пользователя на страницу, с которой пришла форма.
// Принимаются только локальные пути.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if back := r.FormValue("back"); isLocalPath(back) {
		target = back
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isLocalPath отсекает адреса, которые браузер уведет на другой хост.
// Обратный слеш браузеры читают как прямой, поэтому "/\host" тоже чужой.
func isLocalPath(back string) bool {
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") || strings.ContainsRune(back, '\\') {
		return false
	}
	u, err := url.Parse(back)
	return err == nil && u.Scheme == "" && u.Host == ""
}
