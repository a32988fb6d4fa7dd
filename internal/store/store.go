package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
)

type Store struct {
	db *sqlx.DB
}

func Open(config *boot.Config) (*Store, error) {
	isCreating := false
	_, err := os.Stat(config.DatabasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			isCreating = true
		}
	}

	db, err := sqlx.Connect("sqlite3", "file:"+config.DatabasePath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db}
	if isCreating {
		if err := store.createTables(); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`create table account(
		ID             text not null primary key,
		CreatedAt      DATETIME not null,
		UpdatedAt      DATETIME null,
		LastLoggedInAt DATETIME null,
		LoginAttempts  tinyint not null default 0,
		LockedUntil    DATETIME null,
		Active         tinyint not null default 1,
		Verified       tinyint not null default 0,
		Mobile         text not null unique,
		Aadhaar        text not null unique,
		PIN            text not null,
		Name           text not null default '',
		Language       text not null default 'en',
		District       text not null default '',
		State          text not null default '',
		Lat            real null,
		Lon            real null
	)`)
	if err != nil {
		return fmt.Errorf("creating account table: %w", err)
	}

	_, err = s.db.Exec(`create table crop(
		ID        text not null primary key,
		OwnerID   text not null references account(ID),
		CreatedAt DATETIME not null,
		UpdatedAt DATETIME null,
		Active    tinyint not null default 1,
		Status    tinyint not null default 0,
		Name      text not null,
		Variety   text not null default '',
		AreaAcre  real not null default 0,
		SownAt    DATETIME null
	)`)
	if err != nil {
		return fmt.Errorf("creating crop table: %w", err)
	}

	_, err = s.db.Exec(`create table post(
		ID        text not null primary key,
		OwnerID   text not null references account(ID),
		CreatedAt DATETIME not null,
		Title     text not null,
		Body      text not null,
		Category  text not null default ''
	)`)
	if err != nil {
		return fmt.Errorf("creating post table: %w", err)
	}

	// comments follow their post; deleting a post must never leave orphans
	_, err = s.db.Exec(`create table comment(
		ID        text not null primary key,
		PostID    text not null references post(ID) on delete cascade,
		OwnerID   text not null references account(ID),
		CreatedAt DATETIME not null,
		Body      text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating comment table: %w", err)
	}

	return nil
}

// translateConstraint maps a sqlite unique violation onto the conflict
// taxonomy, naming the violated field. Any other error passes through
// untouched.
func translateConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return err
	}
	field := "mobile number"
	if strings.Contains(sqliteErr.Error(), "Aadhaar") {
		field = "aadhaar number"
	}
	return &model.ConflictError{Field: field}
}
