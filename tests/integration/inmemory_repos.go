package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"custody-treasury/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Pool Wallet Repo ---

type inMemoryPoolWalletRepo struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*domain.PoolWallet
	order   []uuid.UUID
}

func newInMemoryPoolWalletRepo() *inMemoryPoolWalletRepo {
	return &inMemoryPoolWalletRepo{wallets: make(map[uuid.UUID]*domain.PoolWallet)}
}

func (r *inMemoryPoolWalletRepo) Create(ctx context.Context, w *domain.PoolWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	r.order = append(r.order, w.ID)
	return nil
}

func (r *inMemoryPoolWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PoolWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryPoolWalletRepo) ListByStatus(ctx context.Context, statuses ...domain.PoolWalletStatus) ([]domain.PoolWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PoolWallet
	for _, id := range r.order {
		w := r.wallets[id]
		for _, s := range statuses {
			if w.Status == s {
				out = append(out, *w)
				break
			}
		}
	}
	return out, nil
}

func (r *inMemoryPoolWalletRepo) Claim(ctx context.Context, id uuid.UUID, reservedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok || w.Status != domain.PoolWalletStatusReady {
		return false, nil
	}
	w.Status = domain.PoolWalletStatusReserved
	w.ReservedAt = &reservedAt
	w.UpdatedAt = reservedAt
	return true, nil
}

func (r *inMemoryPoolWalletRepo) ClaimNext(ctx context.Context, reservedAt time.Time) (*domain.PoolWallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		w := r.wallets[id]
		if w.Status == domain.PoolWalletStatusReady {
			w.Status = domain.PoolWalletStatusReserved
			w.ReservedAt = &reservedAt
			w.UpdatedAt = reservedAt
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPoolWalletRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PoolWalletStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return fmt.Errorf("pool wallet %s not found", id)
	}
	w.Status = status
	if status != domain.PoolWalletStatusReserved {
		w.ReservedAt = nil
	}
	w.UpdatedAt = time.Now()
	return nil
}

// backdateReservation rewrites a reservation timestamp so tests can age a
// claim past the staleness cutoff without sleeping.
func (r *inMemoryPoolWalletRepo) backdateReservation(id uuid.UUID, reservedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.wallets[id]; ok && w.ReservedAt != nil {
		ts := reservedAt
		w.ReservedAt = &ts
	}
}

func (r *inMemoryPoolWalletRepo) ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reset int64
	for _, w := range r.wallets {
		if w.Status == domain.PoolWalletStatusReserved && w.ReservedAt != nil && w.ReservedAt.Before(cutoff) {
			w.Status = domain.PoolWalletStatusReady
			w.ReservedAt = nil
			reset++
		}
	}
	return reset, nil
}

// --- In-Memory Revenue Event Repo ---

type inMemoryRevenueRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*domain.RevenueEvent
	order  []uuid.UUID
}

func newInMemoryRevenueRepo() *inMemoryRevenueRepo {
	return &inMemoryRevenueRepo{events: make(map[uuid.UUID]*domain.RevenueEvent)}
}

func (r *inMemoryRevenueRepo) Create(ctx context.Context, e *domain.RevenueEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.events[e.ID] = &cp
	r.order = append(r.order, e.ID)
	return nil
}

func (r *inMemoryRevenueRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryRevenueRepo) ListByStatus(ctx context.Context, status domain.RevenueEventStatus) ([]domain.RevenueEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.RevenueEvent
	for _, id := range r.order {
		if r.events[id].Status == status {
			out = append(out, *r.events[id])
		}
	}
	return out, nil
}

func (r *inMemoryRevenueRepo) ListByEntity(ctx context.Context, entityID string) ([]domain.RevenueEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.RevenueEvent
	for _, id := range r.order {
		if r.events[id].EntityID == entityID {
			out = append(out, *r.events[id])
		}
	}
	return out, nil
}

func (r *inMemoryRevenueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RevenueEventStatus, txSignature *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("revenue event %s not found", id)
	}
	e.Status = status
	if txSignature != nil {
		e.SubmitterTxSignature = txSignature
	}
	e.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, rec *domain.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryAuditRepo) ListByCaller(ctx context.Context, caller string, limit int) ([]domain.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditRecord
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].Caller == caller {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *inMemoryAuditRepo) ListByOperation(ctx context.Context, op domain.OperationKind, limit int) ([]domain.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditRecord
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].Operation == op {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *inMemoryAuditRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditRecord
	for _, rec := range r.records {
		if !rec.CreatedAt.Before(from) && !rec.CreatedAt.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// all returns a snapshot of every record, for test assertions.
func (r *inMemoryAuditRepo) all() []domain.AuditRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditRecord, len(r.records))
	copy(out, r.records)
	return out
}

// --- Fake Chain Client ---

// fakeChainClient is an in-memory ledger. SendTransfer debits amount+fee
// from the sender and credits amount to the destination, which lets tests
// assert fund conservation across multi-step lifecycles.
type fakeChainClient struct {
	mu       sync.Mutex
	balances map[string]uint64
	fee      uint64
	sends    int
	failNext error
}

func newFakeChainClient(fee uint64) *fakeChainClient {
	return &fakeChainClient{balances: make(map[string]uint64), fee: fee}
}

func (c *fakeChainClient) GetBalance(ctx context.Context, address string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[address], nil
}

func (c *fakeChainClient) SendTransfer(ctx context.Context, from *domain.Keypair, to string, amount uint64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failNext != nil {
		err := c.failNext
		c.failNext = nil
		return "", err
	}
	fromAddr := from.Address()
	if c.balances[fromAddr] < amount+c.fee {
		return "", fmt.Errorf("insufficient balance: %d < %d", c.balances[fromAddr], amount+c.fee)
	}
	c.balances[fromAddr] -= amount + c.fee
	c.balances[to] += amount
	c.sends++
	return fmt.Sprintf("sig_%d", c.sends), nil
}

func (c *fakeChainClient) IsValidAddress(address string) bool {
	return domain.IsValidAddress(address)
}

func (c *fakeChainClient) setBalance(address string, amount uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[address] = amount
}

func (c *fakeChainClient) balanceOf(address string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[address]
}

func (c *fakeChainClient) sendCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sends
}
