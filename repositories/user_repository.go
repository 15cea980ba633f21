package repositories

import (
	"context"
	"fmt"
	"net/http"

	"shoe-store/models"
)

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// ListUsers returns the admin customer list. The upstream wraps the rows in
// a data envelope.
func (r *UserRepository) ListUsers(ctx context.Context) ([]models.Customer, error) {
	var list models.CustomerList
	if err := r.client.getJSON(ctx, "/users", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	return r.client.delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (r *UserRepository) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := r.client.postJSON(ctx, "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckAuth asks the upstream whether its cookie session is still live,
// forwarding the browser's cookies untouched.
func (r *UserRepository) CheckAuth(ctx context.Context, cookies string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.baseURL+"/check-auth", nil)
	if err != nil {
		return err
	}
	if cookies != "" {
		req.Header.Set("Cookie", cookies)
	}
	return r.client.do(req, nil)
}
