package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/domain"

	"github.com/rs/zerolog"
)

// VanityGenerator searches for keypairs whose base58 address ends in a
// configured suffix. The search is brute force: workers generate random
// keypairs until one matches or the deadline passes, then fall back to a
// plain random keypair. Address aesthetics never block an operation.
type VanityGenerator struct {
	cfg config.VanityConfig
	log zerolog.Logger
}

// NewVanityGenerator creates a new VanityGenerator.
func NewVanityGenerator(cfg config.VanityConfig, log zerolog.Logger) *VanityGenerator {
	return &VanityGenerator{
		cfg: cfg,
		log: log.With().Str("component", "vanity").Logger(),
	}
}

// Generate returns a keypair, preferring one with the configured suffix.
// The second return reports whether the suffix was matched.
func (g *VanityGenerator) Generate(ctx context.Context) (*domain.Keypair, bool, error) {
	if g.cfg.Suffix == "" {
		kp, err := domain.NewKeypair()
		return kp, false, err
	}

	workers := g.cfg.MaxWorkers
	if workers < 1 {
		workers = 1
	}

	searchCtx := ctx
	var cancel context.CancelFunc
	if g.cfg.Timeout > 0 {
		searchCtx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
	} else {
		searchCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	found := make(chan *domain.Keypair, 1)
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-searchCtx.Done():
					return
				default:
				}
				kp, err := domain.NewKeypair()
				if err != nil {
					continue
				}
				if strings.HasSuffix(kp.Address(), g.cfg.Suffix) {
					select {
					case found <- kp:
						cancel() // first match wins, stop the other workers
					default:
					}
					return
				}
			}
		}()
	}

	wg.Wait()

	select {
	case kp := <-found:
		g.log.Info().
			Str("suffix", g.cfg.Suffix).
			Str("address", kp.Address()).
			Dur("elapsed", time.Since(start)).
			Msg("vanity address found")
		return kp, true, nil
	default:
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	g.log.Warn().
		Str("suffix", g.cfg.Suffix).
		Dur("elapsed", time.Since(start)).
		Msg("vanity search timed out, using random keypair")
	kp, err := domain.NewKeypair()
	return kp, false, err
}
