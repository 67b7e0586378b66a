package flow

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rusik2379/FinansistFrol/internal/domain"
)

// memStore backs the engine tests with an in-memory rendition of the store
// contracts: miss-tolerant lookups, owner-scoped deletes, zero-valued sums.
type memStore struct {
	mu      sync.Mutex
	now     func() time.Time
	users   map[int64]*domain.User
	entries map[domain.EntryKind][]domain.Entry
	debts   []domain.Debt
	nextID  int64
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{
		now:     now,
		users:   make(map[int64]*domain.User),
		entries: make(map[domain.EntryKind][]domain.Entry),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Upsert(_ context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[u.ID]; ok {
		existing.Handle = u.Handle
		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		existing.LastSeenAt = m.now()
		return nil
	}
	u.RegisteredAt = m.now()
	u.LastSeenAt = m.now()
	m.users[u.ID] = &u
	return nil
}

func (m *memStore) Get(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) FindByHandle(_ context.Context, handle string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	handle = domain.NormalizeHandle(handle)
	for _, u := range m.users {
		if u.Handle != nil && *u.Handle == handle {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) Insert(_ context.Context, kind domain.EntryKind, userID int64, handle *string, amount decimal.Decimal, category string) (domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := domain.Entry{
		ID:         m.id(),
		UserID:     userID,
		Handle:     handle,
		Amount:     amount,
		Category:   category,
		RecordedAt: m.now(),
	}
	m.entries[kind] = append(m.entries[kind], e)
	return e, nil
}

func (m *memStore) List(_ context.Context, kind domain.EntryKind, userID int64, p *domain.Period) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Entry
	for _, e := range m.entries[kind] {
		if e.UserID == userID && p.Contains(e.RecordedAt) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

func (m *memStore) ListRecent(ctx context.Context, kind domain.EntryKind, userID int64, limit int) ([]domain.Entry, error) {
	out, err := m.List(ctx, kind, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Sum(_ context.Context, kind domain.EntryKind, userID int64, p *domain.Period) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, e := range m.entries[kind] {
		if e.UserID == userID && p.Contains(e.RecordedAt) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (m *memStore) Delete(_ context.Context, kind domain.EntryKind, id, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries[kind] {
		if e.ID == id && e.UserID == userID {
			m.entries[kind] = append(m.entries[kind][:i], m.entries[kind][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) InsertDebt(_ context.Context, fromID int64, fromHandle *string, cp domain.Counterparty, amount decimal.Decimal, description string) (domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := domain.Debt{
		ID:          m.id(),
		FromUserID:  fromID,
		FromHandle:  fromHandle,
		ToUserID:    cp.UserID,
		ToName:      cp.Name,
		Amount:      amount,
		Description: description,
		RecordedAt:  m.now(),
	}
	m.debts = append(m.debts, d)
	return d, nil
}

func (m *memStore) ListDebts(_ context.Context, userID int64, p *domain.Period) ([]domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Debt
	for _, d := range m.debts {
		if d.FromUserID == userID && p.Contains(d.RecordedAt) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

func (m *memStore) ListRecentDebts(ctx context.Context, userID int64, limit int) ([]domain.Debt, error) {
	out, err := m.ListDebts(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) SumDebts(_ context.Context, userID int64, p *domain.Period) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, d := range m.debts {
		if d.FromUserID == userID && p.Contains(d.RecordedAt) {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func (m *memStore) SumOutstanding(_ context.Context, userID int64, p *domain.Period) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, d := range m.debts {
		if d.FromUserID == userID && !d.IsPaid && p.Contains(d.RecordedAt) {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func (m *memStore) SumOutstandingBetween(_ context.Context, fromID, toID int64) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, d := range m.debts {
		if d.FromUserID == fromID && d.ToUserID != nil && *d.ToUserID == toID && !d.IsPaid {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func (m *memStore) DeleteDebt(_ context.Context, id, ownerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.debts {
		if d.ID == id && d.FromUserID == ownerID {
			m.debts = append(m.debts[:i], m.debts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Settle(_ context.Context, id, ownerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.debts {
		if d.ID == id && d.FromUserID == ownerID && !d.IsPaid {
			m.debts[i].IsPaid = true
			return true, nil
		}
	}
	return false, nil
}

// memDebts adapts memStore to the DebtStore contract; the debt methods carry
// a suffix on memStore to avoid clashing with the entry methods.
type memDebts struct{ *memStore }

func (m memDebts) Insert(ctx context.Context, fromID int64, fromHandle *string, cp domain.Counterparty, amount decimal.Decimal, description string) (domain.Debt, error) {
	return m.InsertDebt(ctx, fromID, fromHandle, cp, amount, description)
}

func (m memDebts) List(ctx context.Context, userID int64, p *domain.Period) ([]domain.Debt, error) {
	return m.ListDebts(ctx, userID, p)
}

func (m memDebts) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.Debt, error) {
	return m.ListRecentDebts(ctx, userID, limit)
}

func (m memDebts) Sum(ctx context.Context, userID int64, p *domain.Period) (decimal.Decimal, error) {
	return m.SumDebts(ctx, userID, p)
}

func (m memDebts) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	return m.DeleteDebt(ctx, id, ownerID)
}
