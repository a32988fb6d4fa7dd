package store

import (
	"database/sql"
	"errors"
	"fmt"

	"in.co.kisanmitra/internal/model"
)

func (s *Store) CreateCrop(crop *model.Crop) error {
	res, err := s.db.NamedExec(`insert into crop
		(ID, OwnerID, CreatedAt, Active, Status, Name, Variety, AreaAcre, SownAt)
		values(:ID, :OwnerID, :CreatedAt, :Active, :Status, :Name, :Variety, :AreaAcre, :SownAt)`,
		crop)
	if err != nil {
		return fmt.Errorf("inserting crop: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

func (s *Store) ListCrops(owner model.AccountID) ([]model.Crop, error) {
	crops := []model.Crop{}
	err := s.db.Select(&crops, `select * from crop
		where OwnerID = ? and Active = 1
		order by CreatedAt desc`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing crops: %w", err)
	}
	return crops, nil
}

func (s *Store) FetchCrop(id model.CropID) (*model.Crop, error) {
	crop := &model.Crop{}
	err := s.db.Get(crop, `select * from crop where ID = ? and Active = 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("fetching crop: %w", err)
	}
	return crop, nil
}

func (s *Store) UpdateCrop(crop *model.Crop) error {
	res, err := s.db.NamedExec(`update crop set
		Status = :Status,
		Name = :Name,
		Variety = :Variety,
		AreaAcre = :AreaAcre,
		SownAt = :SownAt,
		UpdatedAt = :UpdatedAt
		where ID = :ID and Active = 1`,
		crop)
	if err != nil {
		return fmt.Errorf("updating crop: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return model.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}

// DeactivateCrop soft-deletes; the row stays for history but disappears from
// every read path.
func (s *Store) DeactivateCrop(id model.CropID) error {
	res, err := s.db.Exec(`update crop set Active = 0 where ID = ? and Active = 1`, id)
	if err != nil {
		return fmt.Errorf("deactivating crop: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return model.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	return nil
}
