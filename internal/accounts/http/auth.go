package http

import (
	"encoding/json"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with an email/password pair and receive a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Login request"
//	@Success		200		{object}	accountsdk.SessionResponse	"token, user"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
