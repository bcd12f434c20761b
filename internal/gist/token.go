package gist

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
)

// Classic 40-char hex tokens and fine-grained ghp_ tokens.
var tokenPattern = regexp.MustCompile(`^([\da-f]{40}|ghp_\w{36,251})$`)

// CheckTokenFormat validates the structure of a personal access token
// before any network round trip.
func CheckTokenFormat(token string) error {
	if !tokenPattern.MatchString(token) {
		return fmt.Errorf("invalid personal access token format")
	}
	return nil
}

// ValidateToken queries the rate-limit endpoint to confirm the token is
// live. The rate-limit data itself is not used.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rate_limit", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("validating token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid personal access token (status %s)", resp.Status)
	}
	return nil
}

// TokenStore persists a validated token between runs.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
}

// ResolveToken picks the token for this run: an explicitly provided one is
// validated and saved so it only needs entering once; otherwise a stored
// token is revalidated, and removed loudly when it no longer works.
func ResolveToken(ctx context.Context, c *Client, provided string, store TokenStore) (string, error) {
	if provided != "" {
		if err := CheckTokenFormat(provided); err != nil {
			return "", err
		}
		if err := c.ValidateToken(ctx, provided); err != nil {
			return "", err
		}
		if err := store.SetToken(ctx, provided); err != nil {
			return "", fmt.Errorf("saving token: %w", err)
		}
		return provided, nil
	}

	stored, err := store.Token(ctx)
	if err != nil || stored == "" {
		return "", err
	}
	if err := c.ValidateToken(ctx, stored); err != nil {
		_ = store.SetToken(ctx, "")
		return "", fmt.Errorf("the stored token is no longer valid and has been removed; please provide a new one: %w", err)
	}
	return stored, nil
}
