package http

import (
	"encoding/json"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type OrgHandler struct {
	OrgService *service.OrgService
}

// HandleGet godoc
//
//	@Summary		Organization Endpoint
//	@Description	Return the calling member's organization.
//	@Tags			Organization
//	@Produce		json
//	@Success		200	{object}	accountsdk.OrgResponse		"id, name, created_at, updated_at"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org [get].
func (h *OrgHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, err := h.OrgService.GetOrg(ctx, actorFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrgResponse(org))
}

// HandleUpdate godoc
//
//	@Summary		Organization Update Endpoint
//	@Description	Rename the calling admin's organization.
//	@Tags			Organization
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateOrgRequest	true	"Update request"
//	@Success		200		{object}	accountsdk.OrgResponse		"id, name, created_at, updated_at"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org [patch].
func (h *OrgHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := actorFromCtx(ctx)

	var req accountsdk.UpdateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	if err := h.OrgService.UpdateOrgName(ctx, actor, req.Name); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	org, err := h.OrgService.GetOrg(ctx, actor)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrgResponse(org))
}
