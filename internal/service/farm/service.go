package farm

import (
	"strings"
	"time"

	"in.co.kisanmitra/internal/model"
)

type Database interface {
	CreateCrop(crop *model.Crop) error
	ListCrops(owner model.AccountID) ([]model.Crop, error)
	FetchCrop(id model.CropID) (*model.Crop, error)
	UpdateCrop(crop *model.Crop) error
	DeactivateCrop(id model.CropID) error
}

type service struct {
	db Database
}

func New(db Database) *service {
	return &service{db}
}

func (s *service) Create(owner model.AccountID, params *model.CreateCropParams) (*model.Crop, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, &model.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if params.AreaAcre < 0 {
		return nil, &model.ValidationError{Field: "areaAcre", Message: "must not be negative"}
	}

	crop := &model.Crop{
		ID:        model.CropID(model.CreateID()),
		OwnerID:   owner,
		CreatedAt: time.Now().UTC(),
		Active:    true,
		Status:    model.CropStatusGrowing,
		Name:      name,
		Variety:   strings.TrimSpace(params.Variety),
		AreaAcre:  params.AreaAcre,
		SownAt:    params.SownAt,
	}
	if err := s.db.CreateCrop(crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (s *service) List(owner model.AccountID) ([]model.Crop, error) {
	return s.db.ListCrops(owner)
}

func (s *service) Update(owner model.AccountID, id model.CropID, params *model.UpdateCropParams) (*model.Crop, error) {
	crop, err := s.db.FetchCrop(id)
	if err != nil {
		return nil, err
	}
	if crop.OwnerID != owner {
		return nil, model.ErrForbidden
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, &model.ValidationError{Field: "name", Message: "must not be empty"}
		}
		crop.Name = name
	}
	if params.Variety != nil {
		crop.Variety = strings.TrimSpace(*params.Variety)
	}
	if params.AreaAcre != nil {
		if *params.AreaAcre < 0 {
			return nil, &model.ValidationError{Field: "areaAcre", Message: "must not be negative"}
		}
		crop.AreaAcre = *params.AreaAcre
	}
	if params.SownAt != nil {
		crop.SownAt = params.SownAt
	}
	if params.Status != nil {
		crop.Status = *params.Status
	}

	now := time.Now().UTC()
	crop.UpdatedAt = &now

	if err := s.db.UpdateCrop(crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (s *service) Deactivate(owner model.AccountID, id model.CropID) error {
	crop, err := s.db.FetchCrop(id)
	if err != nil {
		return err
	}
	if crop.OwnerID != owner {
		return model.ErrForbidden
	}
	return s.db.DeactivateCrop(id)
}
