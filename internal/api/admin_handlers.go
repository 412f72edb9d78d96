package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prestigedrive/prestigedrive/internal/admin"
)

// loginRequest 管理端登录请求体。
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := a.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid username or password")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// changePasswordRequest 当前登录管理员修改口令。
type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	info, ok := AuthFromContext(r.Context())
	if !ok || info.Subject == "" {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing auth context")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid json body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := a.admins.ChangePassword(r.Context(), info.Subject, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid password")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}
