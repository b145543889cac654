package registry

import (
	"context"
	"fmt"
	"strings"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// Registry maps participant addresses to user records
type Registry struct {
	ledger  *repository.Ledger
	address model.Address
}

// NewRegistry creates a registry contract hosted at address
func NewRegistry(ledger *repository.Ledger, address model.Address) *Registry {
	return &Registry{ledger: ledger, address: address}
}

// Address returns the contract address
func (r *Registry) Address() model.Address { return r.address }

// Register assigns the next user id to the caller
func (r *Registry) Register(ctx context.Context, caller model.Address, profile model.UserProfile) (model.User, error) {
	if err := validate(caller, profile); err != nil {
		return model.User{}, fmt.Errorf("registry: register %s: %w", caller, err)
	}

	var user model.User
	err := r.ledger.Transact(ctx, func(tx *repository.Tx) error {
		if _, ok := tx.UserIDByAddress(caller); ok {
			return marketerrors.ErrAlreadyRegistered
		}

		user = model.User{
			UserID:       tx.NextSequence(repository.SeqUser),
			Address:      caller,
			Profile:      profile,
			Status:       model.UserStatusActive,
			RegisteredAt: tx.Now(),
			UpdatedAt:    tx.Now(),
		}
		tx.PutUser(user)
		tx.BindAddress(caller, user.UserID)
		tx.Emit(r.address, "UserRegistered", map[string]any{"user_id": user.UserID, "address": caller})
		return nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("registry: register %s: %w", caller, err)
	}
	return user, nil
}

// Update overwrites the caller's profile
func (r *Registry) Update(ctx context.Context, caller model.Address, profile model.UserProfile) (model.User, error) {
	if err := validate(caller, profile); err != nil {
		return model.User{}, fmt.Errorf("registry: update %s: %w", caller, err)
	}

	var user model.User
	err := r.ledger.Transact(ctx, func(tx *repository.Tx) error {
		u, err := r.activeUser(tx, caller)
		if err != nil {
			return err
		}
		u.Profile = profile
		u.UpdatedAt = tx.Now()
		tx.PutUser(u)
		tx.Emit(r.address, "UserUpdated", map[string]any{"user_id": u.UserID})
		user = u
		return nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("registry: update %s: %w", caller, err)
	}
	return user, nil
}

// ChangeUserAddress re-keys the caller's id to newAddress
func (r *Registry) ChangeUserAddress(ctx context.Context, caller, newAddress model.Address) (model.User, error) {
	if newAddress == model.ZeroAddress || newAddress == caller {
		return model.User{}, fmt.Errorf("registry: change address of %s: %w", caller, marketerrors.ErrInvalidAddress)
	}

	var user model.User
	err := r.ledger.Transact(ctx, func(tx *repository.Tx) error {
		u, err := r.activeUser(tx, caller)
		if err != nil {
			return err
		}
		if _, taken := tx.UserIDByAddress(newAddress); taken {
			return marketerrors.ErrAddressInUse
		}

		tx.UnbindAddress(caller)
		tx.BindAddress(newAddress, u.UserID)
		u.Address = newAddress
		u.UpdatedAt = tx.Now()
		tx.PutUser(u)
		tx.Emit(r.address, "UserAddressChanged", map[string]any{
			"user_id": u.UserID,
			"from":    caller,
			"to":      newAddress,
		})
		user = u
		return nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("registry: change address of %s: %w", caller, err)
	}
	return user, nil
}

// Resign deactivates the caller; its address no longer resolves
func (r *Registry) Resign(ctx context.Context, caller model.Address) error {
	err := r.ledger.Transact(ctx, func(tx *repository.Tx) error {
		u, err := r.activeUser(tx, caller)
		if err != nil {
			return err
		}
		u.Status = model.UserStatusResigned
		u.UpdatedAt = tx.Now()
		tx.PutUser(u)
		tx.UnbindAddress(caller)
		tx.Emit(r.address, "UserResigned", map[string]any{"user_id": u.UserID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("registry: resign %s: %w", caller, err)
	}
	return nil
}

// GetUserIDIfExist returns the active user id bound to addr
func (r *Registry) GetUserIDIfExist(ctx context.Context, addr model.Address) (int64, error) {
	var id int64
	err := r.ledger.View(ctx, func(tx *repository.Tx) error {
		var err error
		id, err = r.UserIDTx(tx, addr)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("registry: lookup %s: %w", addr, err)
	}
	return id, nil
}

// GetUser returns a user record, including resigned ones
func (r *Registry) GetUser(ctx context.Context, userID int64) (model.User, error) {
	var user model.User
	err := r.ledger.View(ctx, func(tx *repository.Tx) error {
		u, ok := tx.User(userID)
		if !ok {
			return marketerrors.ErrUserNotFound
		}
		user = u
		return nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("registry: get user %d: %w", userID, err)
	}
	return user, nil
}

// UserIDTx resolves addr to an active user id inside an open transaction
func (r *Registry) UserIDTx(tx *repository.Tx, addr model.Address) (int64, error) {
	id, ok := tx.UserIDByAddress(addr)
	if !ok {
		return 0, marketerrors.ErrUserNotFound
	}
	return id, nil
}

// AddressTx resolves an active user id to its current address inside an open transaction
func (r *Registry) AddressTx(tx *repository.Tx, userID int64) (model.Address, error) {
	u, ok := tx.User(userID)
	if !ok || u.Status != model.UserStatusActive {
		return model.ZeroAddress, marketerrors.ErrUserNotFound
	}
	return u.Address, nil
}

func (r *Registry) activeUser(tx *repository.Tx, addr model.Address) (model.User, error) {
	id, err := r.UserIDTx(tx, addr)
	if err != nil {
		return model.User{}, err
	}
	u, ok := tx.User(id)
	if !ok {
		return model.User{}, marketerrors.ErrUserNotFound
	}
	return u, nil
}

func validate(caller model.Address, p model.UserProfile) error {
	if caller == model.ZeroAddress {
		return marketerrors.ErrInvalidAddress
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Code) == "" {
		return marketerrors.ErrInvalidProfile
	}
	return nil
}
