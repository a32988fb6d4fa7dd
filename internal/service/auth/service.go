package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
	"in.co.kisanmitra/internal/service/token"
)

const bcryptCost = 10

type Database interface {
	CreateAccount(account *model.Account) error
	FindAccountByMobile(mobile string) (*model.Account, error)
	FetchAccount(id model.AccountID) (*model.Account, error)
	ConflictingField(mobile string, aadhaar string) (string, error)
	RecordFailedAttempt(id model.AccountID, now time.Time, maxAttempts int, lockDuration time.Duration) error
	RecordSuccessfulLogin(id model.AccountID, now time.Time) error
	UpdateAccountProfile(account *model.Account) error
}

type service struct {
	config *boot.Config
	db     Database
	tokens *token.Issuer
}

func New(config *boot.Config, db Database, tokens *token.Issuer) *service {
	return &service{config, db, tokens}
}

// VerifyMobile is the OTP issuance stub preceding signup. It rejects numbers
// already registered and returns the generated code; whether the code is
// echoed to the caller is the transport's decision.
func (s *service) VerifyMobile(mobile string) (string, error) {
	if !validMobile(mobile) {
		return "", &model.ValidationError{Field: "mobile", Message: "must be 10 digits"}
	}
	taken, err := s.db.ConflictingField(mobile, "")
	if err != nil {
		return "", fmt.Errorf("checking mobile availability: %w", err)
	}
	if taken != "" {
		return "", &model.ConflictError{Field: "mobile number"}
	}
	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("generating OTP: %w", err)
	}
	return code, nil
}

func (s *service) Signup(params *model.SignupParams) (*model.Account, *token.Pair, error) {
	if !validMobile(params.Mobile) {
		return nil, nil, &model.ValidationError{Field: "mobile", Message: "must be 10 digits"}
	}
	if !validAadhaar(params.Aadhaar) {
		return nil, nil, &model.ValidationError{Field: "aadhaar", Message: "must be 12 digits"}
	}
	if !validPIN(params.PIN) {
		return nil, nil, &model.ValidationError{Field: "pin", Message: "must be 4 digits"}
	}

	taken, err := s.db.ConflictingField(params.Mobile, params.Aadhaar)
	if err != nil {
		return nil, nil, fmt.Errorf("checking for existing account: %w", err)
	}
	if taken != "" {
		return nil, nil, &model.ConflictError{Field: taken}
	}

	pinBytes, err := bcrypt.GenerateFromPassword([]byte(params.PIN), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing PIN: %w", err)
	}

	language := params.Language
	if language == "" {
		language = "en"
	}

	account := &model.Account{
		ID:        model.AccountID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Active:    true,
		Verified:  true,
		Mobile:    params.Mobile,
		Aadhaar:   params.Aadhaar,
		PIN:       string(pinBytes),
		Name:      strings.TrimSpace(params.Name),
		Language:  language,
		District:  strings.TrimSpace(params.District),
		State:     strings.TrimSpace(params.State),
	}
	if params.Lat != 0 || params.Lon != 0 {
		lat, lon := params.Lat, params.Lon
		account.Lat = &lat
		account.Lon = &lon
	}

	// the unique indexes win any race the pre-check missed
	if err := s.db.CreateAccount(account); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.Issue(account)
	if err != nil {
		return nil, nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return account, pair, nil
}

func (s *service) Login(params *model.LoginParams) (*model.Account, *token.Pair, error) {
	if !validMobile(params.Mobile) {
		return nil, nil, &model.ValidationError{Field: "mobile", Message: "must be 10 digits"}
	}
	if !validPIN(params.PIN) {
		return nil, nil, &model.ValidationError{Field: "pin", Message: "must be 4 digits"}
	}

	account, err := s.db.FindAccountByMobile(params.Mobile)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, nil, model.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("looking up account: %w", err)
	}

	now := time.Now().UTC()
	if IsLocked(account, now) {
		return nil, nil, model.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PIN), []byte(params.PIN)); err != nil {
		if err := s.db.RecordFailedAttempt(account.ID, now, s.config.MaxLoginAttempts, s.config.LockoutDuration); err != nil {
			return nil, nil, fmt.Errorf("recording failed attempt: %w", err)
		}
		return nil, nil, model.ErrInvalidCredentials
	}

	if err := s.db.RecordSuccessfulLogin(account.ID, now); err != nil {
		return nil, nil, fmt.Errorf("recording login: %w", err)
	}
	account.LoginAttempts = 0
	account.LockedUntil = nil
	account.LastLoggedInAt = &now

	pair, err := s.tokens.Issue(account)
	if err != nil {
		return nil, nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return account, pair, nil
}

// Refresh mints a new pair from a valid refresh token. The account must
// still exist and be active; there is no other server-side state to check.
func (s *service) Refresh(refreshToken string) (*token.Pair, error) {
	claims, err := s.tokens.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return nil, err
	}

	account, err := s.db.FetchAccount(claims.AccountID())
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrTokenInvalid
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	if !account.Active {
		return nil, model.ErrAccountInactive
	}

	pair, err := s.tokens.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	return pair, nil
}

// Authenticate resolves an access token to its account for the gate.
func (s *service) Authenticate(accessToken string) (*model.Account, error) {
	claims, err := s.tokens.Verify(accessToken, token.TypeAccess)
	if err != nil {
		return nil, err
	}

	account, err := s.db.FetchAccount(claims.AccountID())
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	if !account.Active {
		return nil, model.ErrAccountInactive
	}
	if IsLocked(account, time.Now().UTC()) {
		return nil, model.ErrAccountLocked
	}
	return account, nil
}

func (s *service) Profile(id model.AccountID) (*model.Account, error) {
	return s.db.FetchAccount(id)
}

// UpdateProfile merges the allow-listed fields into the account. Anything
// outside ProfileUpdateParams never reaches this point.
func (s *service) UpdateProfile(id model.AccountID, params *model.ProfileUpdateParams) (*model.Account, error) {
	account, err := s.db.FetchAccount(id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		account.Name = strings.TrimSpace(*params.Name)
	}
	if params.Language != nil {
		account.Language = *params.Language
	}
	if params.District != nil {
		account.District = strings.TrimSpace(*params.District)
	}
	if params.State != nil {
		account.State = strings.TrimSpace(*params.State)
	}
	if params.Lat != nil {
		account.Lat = params.Lat
	}
	if params.Lon != nil {
		account.Lon = params.Lon
	}

	now := time.Now().UTC()
	account.UpdatedAt = &now

	if err := s.db.UpdateAccountProfile(account); err != nil {
		return nil, err
	}
	return account, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
