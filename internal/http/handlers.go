package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/inetstore/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.health == nil {
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	if err := a.health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} AddressResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses [get]
func (a *API) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addresses, err := a.service.ListAddresses(ctx)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, addressesToResponse(addresses))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with address list", "err", err.Error())
	}
}

// @Summary Create address
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body SaveAddressRequest true "Address payload"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses [post]
func (a *API) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[SaveAddressRequest](w, r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling address from request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	address, err := a.service.CreateAddress(ctx, req.toInput())
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusCreated, addressToResponse(address))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary First address
// @Description Returns the earliest saved row.
// @Tags addresses
// @Produce json
// @Success 200 {object} AddressResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses/first [get]
func (a *API) handleFirstAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := a.service.FirstAddress(ctx)
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, addressToResponse(address))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Get address by ID
// @Tags addresses
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses/{id} [get]
func (a *API) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	if err := validateAddressID(id); err != nil {
		a.Logger.DebugContext(ctx, "invalid address id", "id", id, "err", err.Error())
		a.respondBadRequest(w, r, "invalid address id")
		return
	}

	address, err := a.service.GetAddress(ctx, domain.AddressID(id))
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, addressToResponse(address))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Overwrite address
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param address body SaveAddressRequest true "Address payload"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses/{id} [put]
func (a *API) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	if err := validateAddressID(id); err != nil {
		a.Logger.DebugContext(ctx, "invalid address id", "id", id, "err", err.Error())
		a.respondBadRequest(w, r, "invalid address id")
		return
	}

	req, err := decode[SaveAddressRequest](w, r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling address from request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	address, err := a.service.UpdateAddress(ctx, domain.AddressID(id), req.toInput())
	if err != nil {
		a.respondError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, addressToResponse(address))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Delete address
// @Tags addresses
// @Param id path string true "Address ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/addresses/{id} [delete]
func (a *API) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	if err := validateAddressID(id); err != nil {
		a.Logger.DebugContext(ctx, "invalid address id", "id", id, "err", err.Error())
		a.respondBadRequest(w, r, "invalid address id")
		return
	}

	if err := a.service.DeleteAddress(ctx, domain.AddressID(id)); err != nil {
		a.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) respondBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	err := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: msg})
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

// respondError maps service errors onto status codes. Only unexpected errors
// are logged here; the service decorator already logged the failure.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: "internal server error"}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.metrics.observeRejected(err)
		status = http.StatusBadRequest
		resp.Error = invalidInputMessage(err)
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Error = "address not found"
	default:
		a.Logger.ErrorContext(ctx, "unexpected service error", "err", err.Error())
	}

	if err := encode(w, r, status, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}
