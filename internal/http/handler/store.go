package handler

import (
	"encoding/json"
	"eoexstore/internal/core"
	"eoexstore/internal/http/handler/middleware"
	"eoexstore/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	Root           = "GET /{$}"
	Register       = "POST /users/register"
	Login          = "POST /users/login"
	SetRole        = "POST /users/{id}/role"
	ListApps       = "GET /apps"
	GetApp         = "GET /apps/{id}"
	CreateApp      = "POST /apps"
	RecordDownload = "POST /apps/{id}/download"
)

type StoreHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
	catalog          CatalogService
	downloads        Counter
}

func NewStoreHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, users UserService, catalog CatalogService, downloads Counter) *StoreHandler {
	return &StoreHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            users,
		catalog:          catalog,
		downloads:        downloads,
	}
}

func (h *StoreHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: welcomeMsg}, http.StatusOK, requestID(r))
}

func (h *StoreHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	id, err := h.users.Register(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		h.fail(w, err, "Could not register", Register, requestId)
		return
	}

	h.logs.Infow("user registered",
		"user_id", id,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "User registered",
		Data:    map[string]uint64{"id": id},
	}, http.StatusCreated,
		requestId)
}

func (h *StoreHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.users.Login(r.Context(), payload.ToCoreAuthMessage())
	if err != nil {
		h.fail(w, err, "Login failed", Login, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	}, http.StatusOK,
		requestId)
}

func (h *StoreHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	admin, err := h.users.Authorize(r.Context(), authToken(r), core.RoleAdmin)
	if err != nil {
		h.fail(w, err, "Could not change role", SetRole, requestId)
		return
	}

	userID, err := pathID(r)
	if err != nil {
		h.fail(w, err, "Could not change role", SetRole, requestId)
		return
	}

	var payload payload.RoleRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not change role",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SetRole,
			"request_id", requestId)
		return
	}

	user, err := h.users.SetRole(r.Context(), userID, payload.ToCoreRole())
	if err != nil {
		h.fail(w, err, "Could not change role", SetRole, requestId)
		return
	}

	h.logs.Infow("role changed",
		"user_id", userID,
		"role", user.Role.String(),
		"by", admin.UserID,
		"handler", SetRole,
		"request_id", requestId)

	h.respond(w, Response{Data: user}, http.StatusOK, requestId)
}

func (h *StoreHandler) HandleListApps(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	listRequest, err := payload.ParseListAppsRequest(r.URL.Query())
	if err == nil {
		err = listRequest.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list apps",
			Error:   fmt.Errorf("invalid query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters",
			"error", err,
			"handler", ListApps,
			"request_id", requestId)
		return
	}

	apps, err := h.catalog.ListApps(r.Context(), listRequest.ToCoreFilter(), listRequest.ToCorePage())
	if err != nil {
		h.fail(w, err, "Could not list apps", ListApps, requestId)
		return
	}

	h.respond(w, Response{Data: apps}, http.StatusOK, requestId)
}

func (h *StoreHandler) HandleGetApp(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.fail(w, err, "Could not get app", GetApp, requestId)
		return
	}

	app, err := h.catalog.GetApp(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not get app", GetApp, requestId)
		return
	}

	h.respond(w, Response{Data: app}, http.StatusOK, requestId)
}

func (h *StoreHandler) HandleCreateApp(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	admin, err := h.users.Authorize(r.Context(), authToken(r), core.RoleAdmin)
	if err != nil {
		h.fail(w, err, "Could not create app", CreateApp, requestId)
		return
	}

	var payload payload.CreateAppRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not create app",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateApp,
			"request_id", requestId)
		return
	}

	id, err := h.catalog.CreateApp(r.Context(), payload.ToCoreAppFields())
	if err != nil {
		h.fail(w, err, "Could not create app", CreateApp, requestId)
		return
	}

	h.logs.Infow("app created",
		"app_id", id,
		"by", admin.UserID,
		"handler", CreateApp,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "App created",
		Data:    map[string]uint64{"id": id},
	}, http.StatusCreated,
		requestId)
}

func (h *StoreHandler) HandleRecordDownload(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.fail(w, err, "Could not record download", RecordDownload, requestId)
		return
	}

	app, err := h.catalog.RecordDownload(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Could not record download", RecordDownload, requestId)
		return
	}
	h.downloads.Inc()

	h.respond(w, Response{Data: app}, http.StatusOK, requestId)
}

// fail answers with the status that matches err. Storage and unexpected failures are
// logged as errors, client mistakes as warnings.
func (h *StoreHandler) fail(w http.ResponseWriter, err error, message, route, requestId string) {
	code, detail := errorStatus(err)

	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code,
		requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"status", code,
			"handler", route,
			"request_id", requestId)
		return
	}
	h.logs.Warnw("request rejected",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, errInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden, core.ErrForbidden.Error()
	case errors.Is(err, core.ErrAuth):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrStorageTimeout):
		return http.StatusServiceUnavailable, core.ErrStorageTimeout.Error()
	case errors.Is(err, core.ErrStorage):
		return http.StatusServiceUnavailable, core.ErrStorage.Error()
	default:
		return http.StatusInternalServerError, oopsErr
	}
}

var errInvalidID = errors.New("invalid id")

func pathID(r *http.Request) (uint64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}

// authToken reads the session token from "Authorization: Bearer" or, failing that, AUTH_TOKEN.
func authToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return r.Header.Get("AUTH_TOKEN")
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}

func (h *StoreHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
