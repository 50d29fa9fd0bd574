package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
)

// MemoryDirectory is an in-memory OwnerDirectory used for unit testing the
// issuance flow without a running database.
type MemoryDirectory struct {
	mu    sync.Mutex
	users map[string]domain.User
	err   error
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]domain.User)}
}

// AddUser registers an account and returns its generated id.
func (d *MemoryDirectory) AddUser(email string) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New()
	d.users[email] = domain.User{ID: id, Email: email}
	return id
}

// WithError makes every lookup fail with err.
func (d *MemoryDirectory) WithError(err error) *MemoryDirectory {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
	return d
}

func (d *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	user, ok := d.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// MemoryRecordStore is an in-memory RecordStore. The mutex serializes
// allocation and insert, giving the same atomicity the SQL store provides.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records []domain.PaymentRecord
	err     error
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

// WithError makes every write fail with err.
func (s *MemoryRecordStore) WithError(err error) *MemoryRecordStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

func (s *MemoryRecordStore) CreateRecord(ctx context.Context, nonce string, userID uuid.UUID) (*domain.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	var max int64
	for _, rec := range s.records {
		if rec.PaymentID > max {
			max = rec.PaymentID
		}
	}

	rec := domain.PaymentRecord{
		PaymentID: max + 1,
		Nonce:     nonce,
		UserID:    userID,
	}
	s.records = append(s.records, rec)
	return &rec, nil
}

// Records returns a copy of everything written so far.
func (s *MemoryRecordStore) Records() []domain.PaymentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PaymentRecord, len(s.records))
	copy(out, s.records)
	return out
}
