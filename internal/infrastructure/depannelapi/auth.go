package depannelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"
)

var _ interfaces.IAuthGateway = (*Client)(nil)

func (cl *Client) Login(ctx context.Context, email, password string) (entities.Principal, error) {
	data, err := cl.do(ctx, entities.Principal{}, call{
		op:        "login",
		method:    http.MethodPost,
		path:      "auth/login",
		body:      map[string]string{"email": email, "password": password},
		anonymous: true,
	})
	if err != nil {
		return entities.Principal{}, err
	}

	var w wireLogin
	if err := json.Unmarshal(data, &w); err != nil {
		return entities.Principal{}, fmt.Errorf("decode login: %w", err)
	}
	if w.Success != nil && !*w.Success {
		return entities.Principal{}, &lifecycle.RemoteError{StatusCode: http.StatusUnauthorized, Message: w.Message}
	}
	token := firstNonEmpty(w.AccessToken, w.Token)
	user := w.User
	if w.Data != nil {
		token = firstNonEmpty(w.Data.AccessToken, w.Data.Token, token)
		if w.Data.User != nil {
			user = w.Data.User
		}
	}
	if token == "" || user == nil {
		return entities.Principal{}, &lifecycle.RemoteError{StatusCode: http.StatusBadGateway, Message: "login response without token or user"}
	}
	return entities.Principal{
		UserID: string(user.ID),
		Name:   user.Name,
		Role:   normalizeRole(user.Role),
		Token:  token,
	}, nil
}

func (cl *Client) Logout(ctx context.Context, p entities.Principal) error {
	_, err := cl.do(ctx, p, call{op: "logout", method: http.MethodPost, path: "auth/logout"})
	return err
}
