package http

import (
	"encoding/json"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type InvitationsHandler struct {
	InviteService *service.InviteService
}

// HandleList godoc
//
//	@Summary		Invitation Listing Endpoint
//	@Description	List the calling admin's organization invitations, oldest first.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	accountsdk.InvitationsResponse	"invitations"
//	@Failure		403	{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invitations, err := h.InviteService.ListInvitations(ctx, actorFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := accountsdk.InvitationsResponse{
		Invitations: make([]accountsdk.InvitationResponse, 0, len(invitations)),
	}
	for _, inv := range invitations {
		resp.Invitations = append(resp.Invitations, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Invitation Creation Endpoint
//	@Description	Mint a single-use invitation for an email address and send the registration
//	@Description	link. The token never appears in the response; it only travels by email.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.CreateInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	accountsdk.InvitationResponse		"invitation"
//	@Failure		400		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Failure		502		{object}	accountsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	inv, err := h.InviteService.CreateInvitation(ctx, actorFromCtx(ctx), req.Email)
	if err != nil {
		// The invitation survives a failed email send; the caller learns
		// about the delivery problem either way.
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// HandleRemove godoc
//
//	@Summary		Invitation Revocation Endpoint
//	@Description	Delete a pending invitation so its token can no longer be redeemed.
//	@Tags			Invitations
//	@Param			id	path	string	true	"Invitation id"
//	@Success		204
//	@Failure		403	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations/{id} [delete].
func (h *InvitationsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.InviteService.RemoveInvitation(ctx, actorFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
