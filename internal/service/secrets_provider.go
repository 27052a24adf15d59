package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

const remoteFetchTimeout = 10 * time.Second

// SecretsProviderImpl implements ports.SecretsProvider. The custody keypair
// is resolved once by Initialize and cached; encrypted and remote backends
// refresh the cache when the TTL lapses.
//
// Backends:
//   - env: plaintext hex seed from configuration. Dev only.
//   - encrypted: vault-encrypted hex seed, decrypted via EncryptionService.
//   - remote: fetched from a managed secret store over HTTPS with a bearer
//     token. Refresh is synchronous on Get when the TTL has lapsed.
type SecretsProviderImpl struct {
	cfg    config.SecretsConfig
	encSvc ports.EncryptionService
	client *http.Client
	log    zerolog.Logger

	mu        sync.Mutex
	cached    *domain.Keypair
	fetchedAt time.Time
}

// NewSecretsProvider creates a new SecretsProviderImpl. encSvc may be nil
// for the env and remote backends.
func NewSecretsProvider(cfg config.SecretsConfig, encSvc ports.EncryptionService, log zerolog.Logger) *SecretsProviderImpl {
	return &SecretsProviderImpl{
		cfg:    cfg,
		encSvc: encSvc,
		client: &http.Client{Timeout: remoteFetchTimeout},
		log:    log.With().Str("component", "secrets").Logger(),
	}
}

// Initialize resolves the custody keypair once. Must be called at process
// startup before any Get.
func (s *SecretsProviderImpl) Initialize(ctx context.Context) error {
	kp, err := s.resolve(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = kp
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.log.Info().
		Str("mode", s.cfg.Mode).
		Str("address", kp.Address()).
		Msg("custody key resolved")
	return nil
}

// Get returns the cached custody keypair. A lapsed TTL triggers a synchronous
// refresh; if the refresh fails, the stale key is served rather than leaving
// the treasury without a signer.
func (s *SecretsProviderImpl) Get() (*domain.Keypair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		return nil, apperror.ErrNotInitialized()
	}

	if s.cfg.CacheTTL > 0 && time.Since(s.fetchedAt) > s.cfg.CacheTTL {
		ctx, cancel := context.WithTimeout(context.Background(), remoteFetchTimeout)
		kp, err := s.resolve(ctx)
		cancel()
		if err != nil {
			s.log.Warn().Err(err).Msg("secret refresh failed, serving cached key")
		} else {
			s.cached = kp
			s.fetchedAt = time.Now()
		}
	}

	return s.cached, nil
}

func (s *SecretsProviderImpl) resolve(ctx context.Context) (*domain.Keypair, error) {
	switch s.cfg.Mode {
	case "env":
		if s.cfg.SeedHex == "" {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("env mode: seed_hex is empty"))
		}
		kp, err := domain.KeypairFromSeedHex(s.cfg.SeedHex)
		if err != nil {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("env mode: %w", err))
		}
		s.log.Warn().
			Str("mode", "env").
			Msg("SECURITY: custody seed loaded from plaintext configuration; use encrypted or remote mode in production")
		return kp, nil

	case "encrypted":
		if s.encSvc == nil {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("encrypted mode requires an encryption service"))
		}
		if s.cfg.EncryptedSeed == "" {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("encrypted mode: encrypted_seed is empty"))
		}
		seedHex, err := s.encSvc.Decrypt(s.cfg.EncryptedSeed)
		if err != nil {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("decrypting seed: %w", err))
		}
		kp, err := domain.KeypairFromSeedHex(seedHex)
		if err != nil {
			return nil, apperror.ErrSecretUnavailable(fmt.Errorf("encrypted mode: %w", err))
		}
		return kp, nil

	case "remote":
		return s.fetchRemote(ctx)

	default:
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("unknown secrets mode: %q", s.cfg.Mode))
	}
}

// fetchRemote pulls the seed from the managed store. Response body:
// {"seed_hex": "..."}.
func (s *SecretsProviderImpl) fetchRemote(ctx context.Context) (*domain.Keypair, error) {
	if s.cfg.RemoteURL == "" {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("remote mode: remote_url is empty"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.RemoteURL, nil)
	if err != nil {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("building request: %w", err))
	}
	if s.cfg.RemoteToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.RemoteToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("fetching secret: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("secret store returned status %d", resp.StatusCode))
	}

	var body struct {
		SeedHex string `json:"seed_hex"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("decoding secret response: %w", err))
	}

	kp, err := domain.KeypairFromSeedHex(body.SeedHex)
	if err != nil {
		return nil, apperror.ErrSecretUnavailable(fmt.Errorf("remote mode: %w", err))
	}
	return kp, nil
}
