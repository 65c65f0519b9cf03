// file: internals/features/finance/accounts/service/resolver.go
package service

import (
	"context"

	"github.com/google/uuid"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/finance/accounts/model"
	"lembagaku_backend/internals/helpers/errs"
)

// Store is the account/account-group collaborator the resolver talks to.
type Store interface {
	// GroupIDByName resolves a named group within a school; uuid.Nil when absent.
	GroupIDByName(ctx context.Context, schoolID uuid.UUID, name string) (uuid.UUID, error)
	// FindInGroup matches name (case-insensitive, exact) + mobile within a
	// group; uuid.Nil when absent.
	FindInGroup(ctx context.Context, schoolID, groupID uuid.UUID, name, mobile string) (uuid.UUID, error)
	// FindByGroupAndName matches name only (case-insensitive) within a named
	// group; uuid.Nil when absent. Used for the fixed payment/receivable accounts.
	FindByGroupAndName(ctx context.Context, schoolID uuid.UUID, groupName, accountName string) (uuid.UUID, error)
	Create(ctx context.Context, acc *model.Account) error
}

// Resolver maps party identities to ledger accounts.
type Resolver struct {
	Store Store
}

// Resolve returns the account for (displayName, mobile) within groupName,
// creating one when absent. Repeated calls with the same arguments yield the
// same identity, so re-editing an admission never forks ledger history.
func (r *Resolver) Resolve(ctx context.Context, schoolID uuid.UUID, displayName, mobile, groupName string) (uuid.UUID, error) {
	groupID, err := r.Store.GroupIDByName(ctx, schoolID, groupName)
	if err != nil {
		return uuid.Nil, err
	}
	if groupID == uuid.Nil {
		return uuid.Nil, &errs.NotFoundError{Resource: "account group", Name: groupName}
	}

	id, err := r.Store.FindInGroup(ctx, schoolID, groupID, displayName, mobile)
	if err != nil {
		return uuid.Nil, err
	}
	if id != uuid.Nil {
		return id, nil
	}

	acc := model.Account{
		AccountSchoolID: schoolID,
		AccountGroupID:  groupID,
		AccountName:     displayName,
		AccountMobile:   &mobile,
	}
	if err := r.Store.Create(ctx, &acc); err != nil {
		return uuid.Nil, err
	}
	return acc.AccountID, nil
}

// PaymentAccount looks up the fixed account of a payment mode (cash/bank).
// These accounts are provisioned, never created here; absence is fatal.
func (r *Resolver) PaymentAccount(ctx context.Context, schoolID uuid.UUID, mode string) (uuid.UUID, error) {
	name := constants.PaymentAccountName(mode)
	if name == "" {
		return uuid.Nil, errs.NewValidation("payment_mode", "unknown payment mode")
	}
	id, err := r.Store.FindByGroupAndName(ctx, schoolID, constants.AccountGroupPayment, name)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, &errs.NotFoundError{Resource: "payment account", Name: name}
	}
	return id, nil
}

// ReceivableAccount looks up the fixed "Fees Receivable" account. Callers
// treat absence as a degraded mode (posting skipped with a warning), so a
// NotFoundError here is advisory, not fatal.
func (r *Resolver) ReceivableAccount(ctx context.Context, schoolID uuid.UUID) (uuid.UUID, error) {
	id, err := r.Store.FindByGroupAndName(ctx, schoolID, constants.AccountGroupReceivable, constants.AccountNameFeesReceivable)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, &errs.NotFoundError{Resource: "receivable account", Name: constants.AccountNameFeesReceivable}
	}
	return id, nil
}
