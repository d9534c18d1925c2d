package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

func (c *Client) Register(
	ctx context.Context, r domain.Registration,
) (domain.User, error) {
	const op = "rest.Client.Register"

	body := struct {
		Email     string `json:"email"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Role      string `json:"role"`
	}{r.Email, r.Username, r.Password, r.FirstName, r.LastName, string(r.Role)}

	var out struct {
		Detail string   `json:"detail"`
		User   userWire `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/accounts/register/", nil, body, &out)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return out.User.toDomain(), nil
}

func (c *Client) Login(
	ctx context.Context, email, password string,
) (domain.Session, error) {
	const op = "rest.Client.Login"

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out struct {
		Detail string `json:"detail"`
		Token  struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		} `json:"token"`
		User userWire `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/accounts/login/", nil, body, &out)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	// The login payload carries no id, active flag, or join date.
	user := out.User.toDomain()
	user.Active = true
	user.DateJoined = time.Now()

	return domain.Session{
		User: user,
		Token: domain.TokenPair{
			Access:  out.Token.Access,
			Refresh: out.Token.Refresh,
		},
	}, nil
}

func (c *Client) RefreshToken(
	ctx context.Context, refresh string,
) (string, error) {
	const op = "rest.Client.RefreshToken"

	body := struct {
		Refresh string `json:"refresh"`
	}{refresh}

	var out struct {
		Access string `json:"access"`
	}
	err := c.do(ctx, http.MethodPost, "/accounts/token/refresh/", nil, body, &out)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if out.Access == "" {
		return "", fmt.Errorf("%s: %w: empty access token", op, domain.ErrUnauthorized)
	}
	return out.Access, nil
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	const op = "rest.Client.Users"

	var out []userWire
	err := c.do(ctx, http.MethodGet, "/accounts/users/", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users := make([]domain.User, 0, len(out))
	for _, w := range out {
		users = append(users, w.toDomain())
	}
	return users, nil
}
