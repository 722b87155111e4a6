package controllers

import (
	"errors"
	"net/http"
	"ymc/internal/models"
	"ymc/internal/providers"
	"ymc/internal/services"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.MonetizationServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.MonetizationServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	body, err := json.Marshal(models.ErrorResponse{Error: message})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, body)
}

// statusForError maps the resolution/lookup error taxonomy onto HTTP
// statuses: bad input is 4xx, a missing channel is 404, anything else
// (external API failures included) is 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingInput),
		errors.Is(err, services.ErrInvalidURL),
		errors.Is(err, services.ErrUnsupportedURLFormat):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrChannelNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (ac *ApiController) CheckMonetization(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var payload models.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if payload.ChannelURL == "" {
		writeError(w, http.StatusBadRequest, services.ErrMissingInput.Error())
		return
	}

	cacheKey := "check:" + payload.ChannelURL
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, data)
		return
	}

	result, err := ac.service.Check(r.Context(), payload.ChannelURL)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Check failed for %s: %s", payload.ChannelURL, err)
		}
		writeError(w, status, err.Error())
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeJSON(w, http.StatusOK, gson)
}
