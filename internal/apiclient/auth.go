package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Login posts credentials to a role specific login path such as "/admin/login" and
// returns the issued token. A non-OK answer is a *StatusError.
func (c *Client) Login(ctx context.Context, path string, credentials any) (string, error) {
	var body struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	status, err := c.do(ctx, "login", http.MethodPost, c.endpoint(segments...), credentials, &body)
	if err != nil {
		return "", err
	}
	if !ok(status) {
		return "", &StatusError{StatusCode: status, Message: body.Message}
	}
	if body.Token == "" {
		return "", fmt.Errorf("login: response carries no token")
	}
	return body.Token, nil
}
