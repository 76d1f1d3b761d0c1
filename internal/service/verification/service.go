package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

// codeStore persists verification codes. Implementations must make LockChannel
// hold until the surrounding transaction ends.
type codeStore interface {
	LockChannel(ctx context.Context, ch domain.Channel) error
	FindLatest(ctx context.Context, value string) (*domain.VerificationCode, error)
	CountIssuedSince(ctx context.Context, phone string, since time.Time) (int, error)
	Create(ctx context.Context, code domain.VerificationCode) (*domain.VerificationCode, error)
	FindLatestUnused(ctx context.Context, ch domain.Channel, code string) (*domain.VerificationCode, error)
	MarkUsed(ctx context.Context, id int64, at time.Time) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Code range, inclusive.
const (
	minCode = 1000
	maxCode = 9999
)

// Config holds the throttling policy.
type Config struct {
	Cooldown   time.Duration
	DailyLimit int
	Location   *time.Location
}

// DefaultConfig returns a two-minute cooldown and six phone codes per day.
func DefaultConfig() Config {
	return Config{
		Cooldown:   2 * time.Minute,
		DailyLimit: 6,
		Location:   time.UTC,
	}
}

// Service issues and validates one-time verification codes.
type Service struct {
	log      *slog.Logger
	store    codeStore
	tx       txManager
	clock    clock.Clock
	cfg      Config
	generate func() (string, error)
	locks    *keyedMutex
}

// Option customises the Service.
type Option func(*Service)

// WithGenerator replaces the random code generator.
func WithGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.generate = gen }
}

// NewService creates a new verification service.
func NewService(logger *slog.Logger, store codeStore, tx txManager, clk clock.Clock, cfg Config, opts ...Option) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	s := &Service{
		log:      logger.With("service", "verification"),
		store:    store,
		tx:       tx,
		clock:    clk,
		cfg:      cfg,
		generate: randomCode,
		locks:    newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a new code for ch. It fails with domain.ErrThrottled inside
// the cooldown window and, for phones, with domain.ErrQuotaExceeded once the
// daily limit is reached.
func (s *Service) Issue(ctx context.Context, ch domain.Channel) (*domain.VerificationCode, error) {
	if !ch.Kind.IsValid() || ch.Value == "" {
		return nil, domain.NewValidationError("channel", "required")
	}

	unlock := s.locks.Lock(ch.String())
	defer unlock()

	var issued *domain.VerificationCode
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: Serialise with other issuers of this channel
		if err := s.store.LockChannel(ctx, ch); err != nil {
			return domain.NewStorageError("lock channel", err)
		}

		now := s.clock.Now()

		// Step 2: Cooldown
		latest, err := s.store.FindLatest(ctx, ch.Value)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return domain.NewStorageError("find latest", err)
		case now.Sub(latest.CreatedAt) < s.cfg.Cooldown:
			return domain.ErrThrottled
		}

		// Step 3: Daily quota, phones only
		if ch.Kind == domain.ChannelPhone {
			count, err := s.store.CountIssuedSince(ctx, ch.Value, DayStart(now, s.cfg.Location))
			if err != nil {
				return domain.NewStorageError("count issued", err)
			}
			if count >= s.cfg.DailyLimit {
				return domain.ErrQuotaExceeded
			}
		}

		// Step 4: Generate and persist
		code, err := s.generate()
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}

		rec := domain.VerificationCode{Code: code, CreatedAt: now}
		value := ch.Value
		if ch.Kind == domain.ChannelPhone {
			rec.PhoneNumber = &value
		} else {
			rec.Email = &value
		}

		issued, err = s.store.Create(ctx, rec)
		if err != nil {
			return domain.NewStorageError("create", err)
		}
		return nil
	})
	if err != nil {
		s.log.InfoContext(ctx, "verification code refused",
			slog.String("channel", string(ch.Kind)),
			slog.String("reason", err.Error()))
		return nil, fmt.Errorf("verification.Issue: %w", asStorage(err))
	}

	s.log.InfoContext(ctx, "verification code issued",
		slog.String("channel", string(ch.Kind)),
		slog.Int64("code_id", issued.ID))

	return issued, nil
}

// Validate consumes the most recent unused code of ch equal to code. A code
// is accepted once; later attempts fail with domain.ErrInvalidCode.
func (s *Service) Validate(ctx context.Context, ch domain.Channel, code string) error {
	if !ch.Kind.IsValid() || ch.Value == "" {
		return domain.NewValidationError("channel", "required")
	}
	if code == "" {
		return domain.ErrInvalidCode
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.store.FindLatestUnused(ctx, ch, code)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrInvalidCode
		case err != nil:
			return domain.NewStorageError("find unused", err)
		}

		ok, err := s.store.MarkUsed(ctx, rec.ID, s.clock.Now())
		if err != nil {
			return domain.NewStorageError("mark used", err)
		}
		if !ok {
			return domain.ErrInvalidCode
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("verification.Validate: %w", asStorage(err))
	}

	s.log.InfoContext(ctx, "verification code accepted",
		slog.String("channel", string(ch.Kind)))

	return nil
}

// asStorage keeps policy errors as they are and reports anything else,
// including begin and commit failures, as a storage failure.
func asStorage(err error) error {
	for _, known := range []error{
		domain.ErrThrottled, domain.ErrQuotaExceeded, domain.ErrInvalidCode,
		domain.ErrStorage, domain.ErrValidation,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return domain.NewStorageError("transaction", err)
}

// DayStart returns midnight of now's day in tz.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}

// keyedMutex serialises callers sharing a key within this process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock acquires the lock of key and returns its release function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
