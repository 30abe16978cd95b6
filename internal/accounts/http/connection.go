package http

import (
	"encoding/json"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type ConnectionHandler struct {
	OrgService *service.OrgService
}

// HandleGet godoc
//
//	@Summary		Connection Settings Endpoint
//	@Description	Return the organization's integration connection. The API secret is
//	@Description	write-only and never included.
//	@Tags			Connection
//	@Produce		json
//	@Success		200	{object}	accountsdk.ConnectionResponse	"connection"
//	@Failure		404	{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/connection [get].
func (h *ConnectionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.OrgService.GetConnection(ctx, actorFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toConnectionResponse(conn))
}

// HandleSave godoc
//
//	@Summary		Connection Settings Update Endpoint
//	@Description	Create or replace the organization's single integration connection.
//	@Tags			Connection
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ConnectionRequest	true	"Connection settings"
//	@Success		200		{object}	accountsdk.ConnectionResponse	"connection"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/connection [put].
func (h *ConnectionHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.ConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	conn, err := h.OrgService.SaveConnection(ctx, actorFromCtx(ctx), service.ConnectionParams{
		ConnectionType: req.ConnectionType,
		BaseURL:        req.BaseURL,
		APIKey:         req.APIKey,
		APISecret:      req.APISecret,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toConnectionResponse(conn))
}
