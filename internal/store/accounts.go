package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"in.co.kisanmitra/internal/model"
)

func (s *Store) CreateAccount(account *model.Account) error {
	res, err := s.db.NamedExec(`insert into account
		(ID, CreatedAt, Active, Verified, Mobile, Aadhaar, PIN, Name, Language, District, State, Lat, Lon)
		values(:ID, :CreatedAt, :Active, :Verified, :Mobile, :Aadhaar, :PIN, :Name, :Language, :District, :State, :Lat, :Lon)`,
		account)
	if err != nil {
		return translateConstraint(err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

// FindAccountByMobile returns the active account for a mobile number.
// Inactive accounts are reported as not found so they cannot log in.
func (s *Store) FindAccountByMobile(mobile string) (*model.Account, error) {
	account := &model.Account{}
	err := s.db.Get(account, `select * from account where Mobile = ? and Active = 1`, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetching account by mobile: %w", err)
	}
	return account, nil
}

func (s *Store) FetchAccount(id model.AccountID) (*model.Account, error) {
	account := &model.Account{}
	err := s.db.Get(account, `select * from account where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	return account, nil
}

// ConflictingField reports which unique field, if any, is already taken.
// An empty string means both are free. The unique indexes remain the final
// arbiter for inserts that race past this check.
func (s *Store) ConflictingField(mobile string, aadhaar string) (string, error) {
	account := &model.Account{}
	err := s.db.Get(account, `select * from account where Mobile = ? or Aadhaar = ? limit 1`, mobile, aadhaar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("checking for existing account: %w", err)
	}
	if account.Mobile == mobile {
		return "mobile number", nil
	}
	return "aadhaar number", nil
}

// RecordFailedAttempt applies the failed-login transition as one conditional
// UPDATE so racing attempts never interleave a read-modify-write. An elapsed
// lock starts a fresh window at one attempt; crossing maxAttempts sets the
// lock.
func (s *Store) RecordFailedAttempt(id model.AccountID, now time.Time, maxAttempts int, lockDuration time.Duration) error {
	res, err := s.db.NamedExec(`update account set
		LoginAttempts = case
			when LockedUntil is not null and LockedUntil <= :now then 1
			else LoginAttempts + 1
		end,
		LockedUntil = case
			when LockedUntil is not null and LockedUntil > :now then LockedUntil
			when LockedUntil is not null and LockedUntil <= :now then null
			when LoginAttempts + 1 >= :maxAttempts then :lockedUntil
			else null
		end,
		UpdatedAt = :now
		where ID = :id`,
		map[string]interface{}{
			"id":          id,
			"now":         now,
			"maxAttempts": maxAttempts,
			"lockedUntil": now.Add(lockDuration),
		})
	if err != nil {
		return fmt.Errorf("recording failed attempt: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

// RecordSuccessfulLogin clears the attempt counter and any lock
// unconditionally and stamps the login time.
func (s *Store) RecordSuccessfulLogin(id model.AccountID, now time.Time) error {
	_, err := s.db.NamedExec(`update account set
		LoginAttempts = 0,
		LockedUntil = null,
		LastLoggedInAt = :now,
		UpdatedAt = :now
		where ID = :id`,
		map[string]interface{}{"id": id, "now": now})
	if err != nil {
		return fmt.Errorf("recording successful login: %w", err)
	}
	return nil
}

func (s *Store) UpdateAccountProfile(account *model.Account) error {
	res, err := s.db.NamedExec(`update account set
		Name = :Name,
		Language = :Language,
		District = :District,
		State = :State,
		Lat = :Lat,
		Lon = :Lon,
		UpdatedAt = :UpdatedAt
		where ID = :ID`,
		account)
	if err != nil {
		return fmt.Errorf("updating account profile: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return model.ErrAccountNotFound
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}
