package model

import "time"

type AccountID string

type SignupParams struct {
	Mobile   string  `json:"mobile"`
	Aadhaar  string  `json:"aadhaar"`
	PIN      string  `json:"pin"`
	Name     string  `json:"name"`
	Language string  `json:"language"`
	District string  `json:"district"`
	State    string  `json:"state"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type LoginParams struct {
	Mobile string `json:"mobile"`
	PIN    string `json:"pin"`
}

// ProfileUpdateParams is the allow-listed update surface for an account.
// Fields left nil are not touched; payload keys outside this set are dropped
// during decoding.
type ProfileUpdateParams struct {
	Name     *string  `json:"name"`
	Language *string  `json:"language"`
	District *string  `json:"district"`
	State    *string  `json:"state"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

type Account struct {
	ID             AccountID  `db:"ID" json:"id"`
	CreatedAt      time.Time  `db:"CreatedAt" json:"createdAt"`
	UpdatedAt      *time.Time `db:"UpdatedAt" json:"updatedAt,omitempty"`
	LastLoggedInAt *time.Time `db:"LastLoggedInAt" json:"lastLoggedInAt,omitempty"`
	LoginAttempts  int        `db:"LoginAttempts" json:"-"`
	LockedUntil    *time.Time `db:"LockedUntil" json:"-"`
	Active         bool       `db:"Active" json:"-"`
	Verified       bool       `db:"Verified" json:"verified"`
	Mobile         string     `db:"Mobile" json:"mobile"`
	Aadhaar        string     `db:"Aadhaar" json:"-"`
	PIN            string     `db:"PIN" json:"-"`
	Name           string     `db:"Name" json:"name"`
	Language       string     `db:"Language" json:"language"`
	District       string     `db:"District" json:"district"`
	State          string     `db:"State" json:"state"`
	Lat            *float64   `db:"Lat" json:"lat,omitempty"`
	Lon            *float64   `db:"Lon" json:"lon,omitempty"`
}
