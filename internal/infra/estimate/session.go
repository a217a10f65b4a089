package estimate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/errs"
)

// refreshMargin renews access tokens slightly before they expire.
const refreshMargin = 30 * time.Second

type Credentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Session holds an OAuth2 access token obtained with a refresh token. Token
// refreshes are serialized so concurrent callers share one round trip.
type Session struct {
	creds      Credentials
	httpClient *http.Client
	clock      clock.Clock

	mu           sync.Mutex
	accessToken  string
	expiresAt    time.Time
	refreshToken string
}

func NewSession(creds Credentials, httpClient *http.Client, clk clock.Clock) *Session {
	return &Session{
		creds:        creds,
		httpClient:   httpClient,
		clock:        clk,
		refreshToken: creds.RefreshToken,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Token returns a valid access token, refreshing it when needed.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && s.clock.Now().Add(refreshMargin).Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if err := s.refresh(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

// Invalidate drops the cached access token after the provider rejected it.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()
}

func (s *Session) refresh(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", s.refreshToken)
	form.Set("client_id", s.creds.ClientID)
	form.Set("client_secret", s.creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.creds.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "token refresh failed"), errs.ErrExternalProvider)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.Newf("token refresh returned status %d", resp.StatusCode), errs.ErrExternalProvider)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode token response"), errs.ErrExternalProvider)
	}
	if body.AccessToken == "" {
		return errs.Mark(errs.New("token response carried no access token"), errs.ErrExternalProvider)
	}

	s.accessToken = body.AccessToken
	s.expiresAt = s.clock.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	if body.RefreshToken != "" {
		s.refreshToken = body.RefreshToken
	}
	return nil
}
