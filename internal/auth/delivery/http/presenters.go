package http

import (
	"time"

	"inventory-service/internal/auth"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	if r.Username == "" || r.Password == "" {
		return auth.ErrMissingCredentials
	}
	return nil
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Username: r.Username, Password: r.Password}
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{Token: out.Token, ExpiresAt: out.ExpiresAt}
}
