package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"in.co.kisanmitra/internal/model"
)

type FarmService interface {
	Create(owner model.AccountID, params *model.CreateCropParams) (*model.Crop, error)
	List(owner model.AccountID) ([]model.Crop, error)
	Update(owner model.AccountID, id model.CropID, params *model.UpdateCropParams) (*model.Crop, error)
	Deactivate(owner model.AccountID, id model.CropID) error
}

func CreateCrop(farmService FarmService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateCropParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		crop, err := farmService.Create(AccountFrom(c).ID, params)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, crop)
	}
}

func ListCrops(farmService FarmService) echo.HandlerFunc {
	return func(c echo.Context) error {
		crops, err := farmService.List(AccountFrom(c).ID)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, crops)
	}
}

func UpdateCrop(farmService FarmService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.UpdateCropParams{}
		if err := c.Bind(params); err != nil {
			return badRequest(c, "invalid request body")
		}
		crop, err := farmService.Update(AccountFrom(c).ID, model.CropID(c.Param("id")), params)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, crop)
	}
}

func DeleteCrop(farmService FarmService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := farmService.Deactivate(AccountFrom(c).ID, model.CropID(c.Param("id"))); err != nil {
			return fail(c, err)
		}
		return okMessage(c, http.StatusOK, "crop removed", nil)
	}
}
