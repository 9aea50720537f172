// Package auth supplies the signed-in identity and the sign-in/sign-out
// actions, and pushes identity changes to registered watchers.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jotlabs/jot/internal/config"
)

// Identity is the authenticated principal, extracted from token claims.
type Identity struct {
	Email string
}

// Provider exposes the current identity, the interactive auth actions, and
// an identity-change push. Notify's returned stop function releases the
// watcher and is safe to call once.
type Provider interface {
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Identity() (Identity, bool)
	Notify(fn func(id Identity, signedIn bool)) (stop func())
}

// HTTPProvider implements Provider against the note service's auth
// endpoints, persisting the token through the config.
type HTTPProvider struct {
	cfg  *config.Config
	http *http.Client
	log  *zap.SugaredLogger

	mu       sync.Mutex
	watchers map[int]func(Identity, bool)
	nextID   int
}

func NewHTTPProvider(cfg *config.Config, log *zap.SugaredLogger) *HTTPProvider {
	return &HTTPProvider{
		cfg:      cfg,
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      log,
		watchers: make(map[int]func(Identity, bool)),
	}
}

// SignIn exchanges credentials for a bearer token and stores it.
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode login data to JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimRight(p.cfg.ServerURL, "/")+"/v1/auth/login",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		p.log.Errorf("login failed: %v", err)
		return fmt.Errorf("failed to log in: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to log in, status code: %d", resp.StatusCode)
	}

	var respData map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	token, ok := respData["token"]
	if !ok || token == "" {
		return fmt.Errorf("token not found in response")
	}

	if err := p.cfg.ChangeToken(token); err != nil {
		return err
	}

	id, err := ParseIdentity(token)
	if err == nil {
		if err := p.cfg.ChangeIdentity(id.Email); err != nil {
			return err
		}
	}

	p.notify(id, true)
	return nil
}

// SignOut clears the stored token. The remote call is best-effort; clearing
// local state is what actually signs the session out.
func (p *HTTPProvider) SignOut(ctx context.Context) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimRight(p.cfg.ServerURL, "/")+"/v1/auth/logout",
		nil,
	)
	if err == nil {
		if p.cfg.Token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.cfg.Token))
		}
		if resp, doErr := p.http.Do(req); doErr != nil {
			p.log.Warnf("remote logout failed: %v", doErr)
		} else {
			resp.Body.Close()
		}
	}

	if err := p.cfg.ChangeToken(""); err != nil {
		return err
	}

	p.notify(Identity{}, false)
	return nil
}

// Identity returns the current identity and whether a usable (present,
// unexpired) token backs it.
func (p *HTTPProvider) Identity() (Identity, bool) {
	if p.cfg.Token == "" {
		return Identity{}, false
	}

	id, err := ParseIdentity(p.cfg.Token)
	if err != nil {
		return Identity{}, false
	}
	return id, true
}

// Notify registers an identity-change watcher.
func (p *HTTPProvider) Notify(fn func(Identity, bool)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.watchers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.watchers, id)
		})
	}
}

func (p *HTTPProvider) notify(id Identity, signedIn bool) {
	p.mu.Lock()
	fns := make([]func(Identity, bool), 0, len(p.watchers))
	for _, fn := range p.watchers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(id, signedIn)
	}
}
