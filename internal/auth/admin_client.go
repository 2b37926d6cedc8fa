package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// AdminClient talks to the identity provider's admin API (GoTrue-style,
// e.g. Supabase). It is only used to delete the provider-side account when
// a user removes theirs; regular authentication never goes through it.
type AdminClient struct {
	issuerURL  string
	serviceKey string
	httpClient *http.Client
}

// NewAdminClient creates an admin API client. Requires the service role
// key, which must never be exposed to end users.
func NewAdminClient(issuerURL, serviceKey string) *AdminClient {
	return &AdminClient{
		issuerURL:  issuerURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// DeleteUser removes the provider-side account. Idempotent: a user that is
// already gone is not an error.
func (c *AdminClient) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.issuerURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete provider user: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete provider user: status %d: %s", resp.StatusCode, string(body))
	}
}
