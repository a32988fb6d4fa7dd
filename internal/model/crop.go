package model

import "time"

type CropID string

type CropStatus int

const (
	CropStatusGrowing CropStatus = iota
	CropStatusHarvested
	CropStatusFailed
)

type CreateCropParams struct {
	Name     string     `json:"name"`
	Variety  string     `json:"variety"`
	AreaAcre float64    `json:"areaAcre"`
	SownAt   *time.Time `json:"sownAt"`
}

type UpdateCropParams struct {
	Name     *string     `json:"name"`
	Variety  *string     `json:"variety"`
	AreaAcre *float64    `json:"areaAcre"`
	SownAt   *time.Time  `json:"sownAt"`
	Status   *CropStatus `json:"status"`
}

type Crop struct {
	ID        CropID     `db:"ID" json:"id"`
	OwnerID   AccountID  `db:"OwnerID" json:"ownerId"`
	CreatedAt time.Time  `db:"CreatedAt" json:"createdAt"`
	UpdatedAt *time.Time `db:"UpdatedAt" json:"updatedAt,omitempty"`
	Active    bool       `db:"Active" json:"-"`
	Status    CropStatus `db:"Status" json:"status"`
	Name      string     `db:"Name" json:"name"`
	Variety   string     `db:"Variety" json:"variety"`
	AreaAcre  float64    `db:"AreaAcre" json:"areaAcre"`
	SownAt    *time.Time `db:"SownAt" json:"sownAt,omitempty"`
}
