package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ethstore/internal/core"
	"ethstore/internal/http/handler/middleware"
	"ethstore/internal/http/payload"
	"ethstore/internal/model"

	"go.uber.org/zap"
)

var (
	Authenticate = "POST /ethstore/authenticate"
	GetRecords   = "GET /ethstore/records"
	PutRecord    = "PUT /ethstore/records"
)

type RecordHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	records          RecordService
	auth             Authenticator
}

func NewRecordHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, recordService RecordService, auth Authenticator) *RecordHandler {
	return &RecordHandler{
		logs:             logger,
		requestValidator: requestValidator,
		records:          recordService,
		auth:             auth,
	}
}

// Register adds every record route to mux.
func (h *RecordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetRecords, h.HandleGetRecords)
	mux.HandleFunc(PutRecord, h.HandlePutRecord)
}

func (h *RecordHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: tokenData{Token: token}}, http.StatusOK, requestId)
}

func (h *RecordHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	records, err := h.records.GetAllRecords(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve records",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get all records",
			"error", err,
			"handler", GetRecords,
			"request_id", requestId)
		return
	}

	h.logs.Infow("records retrieved",
		"count", len(records),
		"handler", GetRecords,
		"request_id", requestId)

	h.respond(w, Response{Data: records}, http.StatusOK, requestId)
}

func (h *RecordHandler) HandlePutRecord(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	token, ok := bearerToken(r)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "bearer token is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing bearer token", "handler", PutRecord, "request_id", requestId)
		return
	}

	if err := h.auth.Authorize(token); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   core.ErrUnauthorized.Error(),
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("token rejected",
			"error", err,
			"handler", PutRecord,
			"request_id", requestId)
		return
	}

	var record model.Record
	if err := h.requestValidator.DecodeJSONPayload(r, &record); err != nil {
		h.respond(w, Response{
			Message: "Could not store record",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode record",
			"error", err,
			"handler", PutRecord,
			"request_id", requestId)
		return
	}

	affected, err := h.records.SaveRecord(r.Context(), record)
	if err != nil {
		resp := Response{
			Message: "Could not store record",
			Error:   oopsErr,
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidRecord) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to save record",
			"error", err,
			"handler", PutRecord,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: upsertData{Affected: affected}}, http.StatusOK, requestId)
}

func (h *RecordHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}
