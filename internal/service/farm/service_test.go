package farm

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"in.co.kisanmitra/internal/boot"
	"in.co.kisanmitra/internal/model"
	"in.co.kisanmitra/internal/store"
)

func testService(t *testing.T) (*service, model.AccountID, model.AccountID) {
	t.Helper()
	config := &boot.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	db, err := store.Open(config)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	owner := createAccount(t, db, "9876543210", "123456789012")
	other := createAccount(t, db, "9876543211", "123456789013")
	return New(db), owner, other
}

func createAccount(t *testing.T, db *store.Store, mobile string, aadhaar string) model.AccountID {
	t.Helper()
	account := &model.Account{
		ID:        model.AccountID(model.CreateID()),
		CreatedAt: time.Now().UTC(),
		Active:    true,
		Mobile:    mobile,
		Aadhaar:   aadhaar,
		PIN:       "unused",
	}
	require.NoError(t, db.CreateAccount(account))
	return account.ID
}

func TestCropLifecycle(t *testing.T) {
	assert := assert.New(t)
	service, owner, other := testService(t)

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := service.Create(owner, &model.CreateCropParams{Name: "  "})
		var validation *model.ValidationError
		assert.ErrorAs(err, &validation)
	})

	crop, err := service.Create(owner, &model.CreateCropParams{
		Name:     "wheat",
		Variety:  "HD-2967",
		AreaAcre: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(model.CropStatusGrowing, crop.Status)

	t.Run("only the owner may update", func(t *testing.T) {
		status := model.CropStatusHarvested
		_, err := service.Update(other, crop.ID, &model.UpdateCropParams{Status: &status})
		assert.ErrorIs(err, model.ErrForbidden)

		updated, err := service.Update(owner, crop.ID, &model.UpdateCropParams{Status: &status})
		assert.Nil(err)
		assert.Equal(model.CropStatusHarvested, updated.Status)
		assert.Equal("wheat", updated.Name)
	})

	t.Run("only the owner may deactivate", func(t *testing.T) {
		assert.ErrorIs(service.Deactivate(other, crop.ID), model.ErrForbidden)
		assert.Nil(service.Deactivate(owner, crop.ID))

		crops, err := service.List(owner)
		assert.Nil(err)
		assert.Len(crops, 0)
	})
}
