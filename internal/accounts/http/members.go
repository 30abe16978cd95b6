package http

import (
	"encoding/json"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleList godoc
//
//	@Summary		Member Listing Endpoint
//	@Description	List the calling admin's organization members, oldest first.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	accountsdk.MembersResponse	"members"
//	@Failure		403	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.MemberService.ListMembers(ctx, actorFromCtx(ctx))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := accountsdk.MembersResponse{Members: make([]accountsdk.UserResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toUserResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleChangeRole godoc
//
//	@Summary		Role Change Endpoint
//	@Description	Set another member's role within the organization. Admins cannot change
//	@Description	their own role.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Member user id"
//	@Param			request	body	accountsdk.ChangeRoleRequest	true	"Role change request"
//	@Success		204
//	@Failure		400	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/members/{id}/role [patch].
func (h *MembersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Unknown role")
		return
	}

	err = h.MemberService.ChangeRole(ctx, actorFromCtx(ctx), r.PathValue("id"), role)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove godoc
//
//	@Summary		Member Removal Endpoint
//	@Description	Remove a member from the organization along with any invitations addressed
//	@Description	to them. Removing an id that does not exist in the org succeeds quietly.
//	@Tags			Members
//	@Param			id	path	string	true	"Member user id"
//	@Success		204
//	@Failure		403	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/org/members/{id} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MemberService.RemoveMember(ctx, actorFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
