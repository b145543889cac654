package repository

import (
	"maps"
	"time"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/utils"
)

// Tx is a unit of work against the ledger. Every write is journaled so the
// ledger can undo it if the transaction fails.
type Tx struct {
	id       string
	now      time.Time
	readOnly bool
	st       *state
	ledger   *Ledger
	journal  []func()
	events   []model.Event
}

func newTx(l *Ledger, readOnly bool) *Tx {
	return &Tx{
		id:       utils.GenerateID(),
		now:      l.Now(),
		readOnly: readOnly,
		st:       l.state,
		ledger:   l,
	}
}

// ID returns the transaction identifier stamped on emitted events
func (tx *Tx) ID() string { return tx.id }

// Now returns the ledger timestamp captured when the transaction began
func (tx *Tx) Now() time.Time { return tx.now }

func (tx *Tx) rollback() {
	for i := len(tx.journal) - 1; i >= 0; i-- {
		tx.journal[i]()
	}
	tx.journal = nil
	tx.events = nil
}

func (tx *Tx) mustWrite() {
	if tx.readOnly {
		panic("repository: write in read-only transaction")
	}
}

func put[K comparable, V any](tx *Tx, m map[K]V, k K, v V) {
	tx.mustWrite()
	old, existed := m[k]
	tx.journal = append(tx.journal, func() {
		if existed {
			m[k] = old
		} else {
			delete(m, k)
		}
	})
	m[k] = v
}

func remove[K comparable, V any](tx *Tx, m map[K]V, k K) {
	tx.mustWrite()
	old, existed := m[k]
	if !existed {
		return
	}
	tx.journal = append(tx.journal, func() { m[k] = old })
	delete(m, k)
}

// Emit records an event that becomes visible when the transaction commits
func (tx *Tx) Emit(contract model.Address, name string, fields map[string]any) {
	tx.mustWrite()
	tx.events = append(tx.events, model.Event{
		TxID:      tx.id,
		Contract:  contract,
		Name:      name,
		Fields:    maps.Clone(fields),
		Timestamp: tx.now,
	})
}

// NextSequence returns the next identifier of the named sequence
func (tx *Tx) NextSequence(name string) int64 {
	next, ok := tx.st.sequences[name]
	if !ok {
		next = tx.ledger.sequenceBase(name)
	}
	put(tx, tx.st.sequences, name, next+1)
	return next
}

// User returns the registry record for an id
func (tx *Tx) User(id int64) (model.User, bool) {
	u, ok := tx.st.users[id]
	return u, ok
}

// PutUser stores a registry record
func (tx *Tx) PutUser(u model.User) {
	put(tx, tx.st.users, u.UserID, u)
}

// UserIDByAddress resolves an address bound to an active user
func (tx *Tx) UserIDByAddress(addr model.Address) (int64, bool) {
	id, ok := tx.st.addresses[addr]
	return id, ok
}

// BindAddress points addr at a user id
func (tx *Tx) BindAddress(addr model.Address, id int64) {
	put(tx, tx.st.addresses, addr, id)
}

// UnbindAddress makes addr unresolvable
func (tx *Tx) UnbindAddress(addr model.Address) {
	remove(tx, tx.st.addresses, addr)
}

// Auction returns a copy of the stored auction
func (tx *Tx) Auction(id int64) (model.Auction, bool) {
	a, ok := tx.st.auctions[id]
	if !ok {
		return model.Auction{}, false
	}
	return a.Clone(), true
}

// PutAuction stores a copy of the auction
func (tx *Tx) PutAuction(a model.Auction) {
	put(tx, tx.st.auctions, a.AuctionID, a.Clone())
}

// Auctions returns copies of every auction ordered by id
func (tx *Tx) Auctions() []model.Auction {
	ids := sortedKeys(tx.st.auctions)
	out := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		out = append(out, tx.st.auctions[id].Clone())
	}
	return out
}

// Balance returns the fungible balance of account in token
func (tx *Tx) Balance(token, account model.Address) uint64 {
	return tx.st.balances[holding{token, account}]
}

// SetBalance overwrites the fungible balance of account in token
func (tx *Tx) SetBalance(token, account model.Address, amount uint64) {
	put(tx, tx.st.balances, holding{token, account}, amount)
}

// Allowance returns how much spender may pull from owner in token
func (tx *Tx) Allowance(token, owner, spender model.Address) uint64 {
	return tx.st.allowances[grant{token, owner, spender}]
}

// SetAllowance overwrites the allowance granted by owner to spender
func (tx *Tx) SetAllowance(token, owner, spender model.Address, amount uint64) {
	put(tx, tx.st.allowances, grant{token, owner, spender}, amount)
}

// Supply returns the total supply of token
func (tx *Tx) Supply(token model.Address) (uint64, bool) {
	s, ok := tx.st.supplies[token]
	return s, ok
}

// SetSupply overwrites the total supply of token
func (tx *Tx) SetSupply(token model.Address, amount uint64) {
	put(tx, tx.st.supplies, token, amount)
}

// Collectible returns a non-fungible token record
func (tx *Tx) Collectible(collection model.Address, tokenID int64) (model.Collectible, bool) {
	c, ok := tx.st.collectibles[collectibleKey{collection, tokenID}]
	return c, ok
}

// PutCollectible stores a non-fungible token record
func (tx *Tx) PutCollectible(c model.Collectible) {
	put(tx, tx.st.collectibles, collectibleKey{c.Collection, c.TokenID}, c)
}

// Holdings returns how many tokens of collection owner holds
func (tx *Tx) Holdings(collection, owner model.Address) uint64 {
	return tx.st.holdings[holding{collection, owner}]
}

// SetHoldings overwrites the token count of owner in collection
func (tx *Tx) SetHoldings(collection, owner model.Address, count uint64) {
	put(tx, tx.st.holdings, holding{collection, owner}, count)
}

// Certificate returns the certificate issued for an auction
func (tx *Tx) Certificate(auctionID int64) (model.Certificate, bool) {
	c, ok := tx.st.certificates[auctionID]
	return c, ok
}

// PutCertificate stores the certificate issued for an auction
func (tx *Tx) PutCertificate(c model.Certificate) {
	put(tx, tx.st.certificates, c.AuctionID, c)
}

// ContractOwner returns the owner recorded for a contract
func (tx *Tx) ContractOwner(contract model.Address) (model.Address, bool) {
	o, ok := tx.st.owners[contract]
	return o, ok
}

// SetContractOwner records the owner of a contract
func (tx *Tx) SetContractOwner(contract, owner model.Address) {
	put(tx, tx.st.owners, contract, owner)
}

// IsMinter reports whether account may mint in collection
func (tx *Tx) IsMinter(collection, account model.Address) bool {
	return tx.st.minters[holding{collection, account}]
}

// SetMinter grants or revokes the minter role
func (tx *Tx) SetMinter(collection, account model.Address, allowed bool) {
	if !allowed {
		remove(tx, tx.st.minters, holding{collection, account})
		return
	}
	put(tx, tx.st.minters, holding{collection, account}, true)
}

// NativeBalance returns the native-currency balance of account
func (tx *Tx) NativeBalance(account model.Address) uint64 {
	return tx.st.native[account]
}

// SetNativeBalance overwrites the native-currency balance of account
func (tx *Tx) SetNativeBalance(account model.Address, amount uint64) {
	put(tx, tx.st.native, account, amount)
}

// TransferNative moves native currency between accounts
func (tx *Tx) TransferNative(from, to model.Address, amount uint64) error {
	if to == model.ZeroAddress {
		return marketerrors.ErrInvalidAddress
	}
	fromBal := tx.NativeBalance(from)
	if fromBal < amount {
		return marketerrors.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}
	toBal := tx.NativeBalance(to)
	if toBal > ^uint64(0)-amount {
		return marketerrors.ErrOverflow
	}
	tx.SetNativeBalance(from, fromBal-amount)
	tx.SetNativeBalance(to, toBal+amount)
	return nil
}

// Value returns a named scalar stored by a contract
func (tx *Tx) Value(key string) uint64 {
	return tx.st.values[key]
}

// SetValue overwrites a named scalar
func (tx *Tx) SetValue(key string, v uint64) {
	put(tx, tx.st.values, key, v)
}
