package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	One-time setup of a fresh deployment: creates the first organization and its
//	@Description	admin. Requires the pre-configured bootstrap token as a bearer credential.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.BootstrapRequest		true	"Bootstrap request"
//	@Success		201		{object}	accountsdk.BootstrapResponse	"user, generated_password"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	accountsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
	if token == "" {
		writeErrorCode(w, http.StatusUnauthorized,
			accountsdk.ErrorCodeAccessDenied, "Bootstrap token is required")
		return
	}

	var req accountsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	admin, password, err := h.BootstrapService.Bootstrap(ctx, token, service.BootstrapData{
		OrgName:        req.OrgName,
		AdminEmail:     req.AdminEmail,
		AdminFirstName: req.AdminFirstName,
		AdminLastName:  req.AdminLastName,
		AdminPassword:  req.AdminPassword,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.BootstrapResponse{
		User:              toUserResponse(admin),
		GeneratedPassword: password,
	})
}
