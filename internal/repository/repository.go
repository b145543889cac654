package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	model "auction-market/internal/models"

	"github.com/jonboulle/clockwork"
)

// Sequence names for ledger-assigned identifiers
const (
	SeqUser    = "user"
	SeqAuction = "auction"
)

// DefaultSequenceBase is the first identifier handed out by a sequence
const DefaultSequenceBase int64 = 100

type holding struct {
	token   model.Address
	account model.Address
}

type grant struct {
	token   model.Address
	owner   model.Address
	spender model.Address
}

type collectibleKey struct {
	collection model.Address
	tokenID    int64
}

// state is every piece of contract storage hosted by the ledger
type state struct {
	sequences    map[string]int64
	users        map[int64]model.User
	addresses    map[model.Address]int64
	auctions     map[int64]model.Auction
	balances     map[holding]uint64
	allowances   map[grant]uint64
	supplies     map[model.Address]uint64
	collectibles map[collectibleKey]model.Collectible
	holdings     map[holding]uint64
	certificates map[int64]model.Certificate
	owners       map[model.Address]model.Address
	minters      map[holding]bool
	native       map[model.Address]uint64
	values       map[string]uint64
}

func newState() *state {
	return &state{
		sequences:    make(map[string]int64),
		users:        make(map[int64]model.User),
		addresses:    make(map[model.Address]int64),
		auctions:     make(map[int64]model.Auction),
		balances:     make(map[holding]uint64),
		allowances:   make(map[grant]uint64),
		supplies:     make(map[model.Address]uint64),
		collectibles: make(map[collectibleKey]model.Collectible),
		holdings:     make(map[holding]uint64),
		certificates: make(map[int64]model.Certificate),
		owners:       make(map[model.Address]model.Address),
		minters:      make(map[holding]bool),
		native:       make(map[model.Address]uint64),
		values:       make(map[string]uint64),
	}
}

// EventFilter narrows the committed event log
type EventFilter struct {
	Contract model.Address
	Name     string
	After    int64
}

func (f EventFilter) match(e model.Event) bool {
	if f.Contract != "" && f.Contract != e.Contract {
		return false
	}
	if f.Name != "" && f.Name != e.Name {
		return false
	}
	return e.Sequence > f.After
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock sets the clock that stamps transactions
func WithClock(clock clockwork.Clock) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithSequenceBase sets the first identifier of a named sequence
func WithSequenceBase(name string, base int64) Option {
	return func(l *Ledger) { l.bases[name] = base }
}

// Ledger is a concurrency-safe in-memory host for contract state.
// Writers are serialized; each transaction commits entirely or not at all.
type Ledger struct {
	mu     sync.RWMutex
	clock  clockwork.Clock
	bases  map[string]int64
	state  *state
	events []model.Event
}

// NewLedger creates an empty ledger
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		clock: clockwork.NewRealClock(),
		bases: make(map[string]int64),
		state: newState(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the current ledger time
func (l *Ledger) Now() time.Time {
	return l.clock.Now().UTC()
}

// Transact runs fn as a single atomic transaction. Any error returned by fn,
// or a panic inside it, rolls back every mutation and drops emitted events.
func (l *Ledger) Transact(ctx context.Context, fn func(tx *Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transact: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := newTx(l, false)
	defer func() {
		if r := recover(); r != nil {
			tx.rollback()
			panic(r)
		}
		if err != nil {
			tx.rollback()
			return
		}
		l.commit(tx)
	}()

	return fn(tx)
}

// View runs fn against a read-only snapshot of the ledger
func (l *Ledger) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("view: %w", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return fn(newTx(l, true))
}

// Events returns committed events matching the filter, oldest first
func (l *Ledger) Events(ctx context.Context, filter EventFilter) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]model.Event, 0)
	for _, e := range l.events {
		if filter.match(e) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (l *Ledger) commit(tx *Tx) {
	next := int64(len(l.events)) + 1
	for i := range tx.events {
		tx.events[i].Sequence = next + int64(i)
	}
	l.events = append(l.events, tx.events...)
}

func (l *Ledger) sequenceBase(name string) int64 {
	if base, ok := l.bases[name]; ok {
		return base
	}
	return DefaultSequenceBase
}

func sortedKeys[K int64 | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
