package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dashdocs/dashdocs/internal/accounts/domain"
	"github.com/dashdocs/dashdocs/internal/accounts/service"
	"github.com/dashdocs/dashdocs/internal/accounts/store"
	"github.com/dashdocs/dashdocs/pkg/accountsdk"
	"github.com/dashdocs/dashdocs/pkg/httpx"
	"github.com/dashdocs/dashdocs/pkg/slogx"
)

func toUserResponse(u domain.User) accountsdk.UserResponse {
	return accountsdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		OrgID:     u.OrgID,
		CreatedAt: u.CreatedAt,
	}
}

func toInvitationResponse(inv domain.Invitation) accountsdk.InvitationResponse {
	return accountsdk.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role.String(),
		OrgID:     inv.OrgID,
		ExpiresAt: inv.ExpiresAt,
		Accepted:  inv.Accepted,
		CreatedAt: inv.CreatedAt,
	}
}

func toOrgResponse(o domain.Org) accountsdk.OrgResponse {
	return accountsdk.OrgResponse{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toConnectionResponse(c domain.Connection) accountsdk.ConnectionResponse {
	// API secret is write-only
	return accountsdk.ConnectionResponse{
		ID:             c.ID,
		ConnectionType: c.ConnectionType,
		BaseURL:        c.BaseURL,
		APIKey:         c.APIKey,
		OrgID:          c.OrgID,
		UpdatedAt:      c.UpdatedAt,
	}
}

// actorFromCtx rebuilds the acting user from the session claims the authn
// middleware stored on the context.
func actorFromCtx(ctx context.Context) domain.Actor {
	return domain.Actor{
		ID:    httpx.UserIDFromCtx(ctx),
		Role:  domain.Role(httpx.RoleFromCtx(ctx)),
		OrgID: httpx.OrgIDFromCtx(ctx),
	}
}

func writeErrorCode(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, accountsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

// writeServiceError translates service sentinels into the shared error
// envelope. Anything unrecognized is a 500 with a generic body.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidRequest, "Invalid request parameters")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErrorCode(w, http.StatusUnauthorized,
			accountsdk.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInvalidToken, "Invitation token is invalid")
	case errors.Is(err, service.ErrInviteExpired):
		writeErrorCode(w, http.StatusBadRequest,
			accountsdk.ErrorCodeInviteExpired, "Invitation has expired")
	case errors.Is(err, service.ErrUserExists):
		writeErrorCode(w, http.StatusConflict,
			accountsdk.ErrorCodeUserExists, "A user with this email already exists")
	case errors.Is(err, service.ErrInvitationExists):
		writeErrorCode(w, http.StatusConflict,
			accountsdk.ErrorCodeInvitationExists, "An outstanding invitation already exists for this email")
	case errors.Is(err, service.ErrUnauthorized):
		writeErrorCode(w, http.StatusForbidden,
			accountsdk.ErrorCodeAccessDenied, "You are not allowed to perform this action")
	case errors.Is(err, service.ErrLastAdmin):
		writeErrorCode(w, http.StatusConflict,
			accountsdk.ErrorCodeLastAdmin, "Cannot remove the last admin of an organization")
	case errors.Is(err, service.ErrBootstrapDone):
		writeErrorCode(w, http.StatusConflict,
			accountsdk.ErrorCodeBootstrapDone, "System is already bootstrapped")
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		writeErrorCode(w, http.StatusUnauthorized,
			accountsdk.ErrorCodeAccessDenied, "Bootstrap token is invalid")
	case errors.Is(err, service.ErrNotificationFailed):
		writeErrorCode(w, http.StatusBadGateway,
			accountsdk.ErrorCodeNotifyFailed, "Invitation stored but the email could not be delivered")
	case errors.Is(err, store.ErrNotFound):
		writeErrorCode(w, http.StatusNotFound,
			accountsdk.ErrorCodeNotFound, "Resource not found")
	default:
		slogx.FromContext(ctx).Error("unhandled service error", "err", err)
		writeErrorCode(w, http.StatusInternalServerError,
			accountsdk.ErrorCodeServerError, "Internal server error")
	}
}
