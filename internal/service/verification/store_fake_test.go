package verification

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// memStore is an in-memory codeStore. failOn makes the named method fail.
type memStore struct {
	mu     sync.Mutex
	codes  []domain.VerificationCode
	failOn map[string]error
	locks  int
}

func newMemStore() *memStore {
	return &memStore{failOn: map[string]error{}}
}

func (m *memStore) fail(method string) error {
	return m.failOn[method]
}

func (m *memStore) LockChannel(ctx context.Context, ch domain.Channel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("LockChannel"); err != nil {
		return err
	}
	m.locks++
	return nil
}

func matches(c domain.VerificationCode, value string) bool {
	return (c.PhoneNumber != nil && *c.PhoneNumber == value) || (c.Email != nil && *c.Email == value)
}

func (m *memStore) FindLatest(ctx context.Context, value string) (*domain.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindLatest"); err != nil {
		return nil, err
	}
	for i := len(m.codes) - 1; i >= 0; i-- {
		if matches(m.codes[i], value) {
			c := m.codes[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CountIssuedSince(ctx context.Context, phone string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CountIssuedSince"); err != nil {
		return 0, err
	}
	n := 0
	for _, c := range m.codes {
		if c.PhoneNumber != nil && *c.PhoneNumber == phone && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) Create(ctx context.Context, code domain.VerificationCode) (*domain.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("Create"); err != nil {
		return nil, err
	}
	code.ID = int64(len(m.codes) + 1)
	m.codes = append(m.codes, code)
	return &code, nil
}

func (m *memStore) FindLatestUnused(ctx context.Context, ch domain.Channel, code string) (*domain.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindLatestUnused"); err != nil {
		return nil, err
	}
	for i := len(m.codes) - 1; i >= 0; i-- {
		c := m.codes[i]
		if matches(c, ch.Value) && c.Code == code && c.UsedAt == nil {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) MarkUsed(ctx context.Context, id int64, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("MarkUsed"); err != nil {
		return false, err
	}
	for i := range m.codes {
		if m.codes[i].ID == id {
			if m.codes[i].UsedAt != nil {
				return false, nil
			}
			m.codes[i].UsedAt = &at
			return true, nil
		}
	}
	return false, nil
}

// inlineTx runs fn without a transaction; commitErr simulates a failed commit.
type inlineTx struct {
	commitErr error
}

func (t inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return t.commitErr
}
