package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/service"
)

// StoreHandler handles merchant store endpoints.
type StoreHandler struct {
	svc service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(svc service.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// StoreRequest carries the store form fields. MerchantID associates the store
// with its parent and is required on create only.
type StoreRequest struct {
	MerchantID  string `json:"merchant_id" validate:"omitempty,uuid"`
	StoreName   string `json:"store_name" validate:"required"`
	StoreCode   string `json:"store_code" validate:"required"`
	OwnerName   string `json:"owner_name" validate:"required"`
	OwnerMobile string `json:"owner_mobile" validate:"required,len=10,numeric"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Pincode     string `json:"pincode" validate:"required,len=6,numeric"`
}

func (r StoreRequest) toModel() *model.Store {
	return &model.Store{
		StoreName:   r.StoreName,
		StoreCode:   r.StoreCode,
		OwnerName:   r.OwnerName,
		OwnerMobile: r.OwnerMobile,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Pincode:     r.Pincode,
	}
}

// ListByMerchant godoc
// @Summary List a merchant's stores
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoresByMerchantRequest true "Merchant selector"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /merchants/stores [post]
func (h *StoreHandler) ListByMerchant(c echo.Context) error {
	var req StoresByMerchantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid merchant ID",
			Code:  "INVALID_UUID",
		})
	}

	stores, err := h.svc.ListByMerchant(c.Request().Context(), merchantID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "stores fetched", Data: stores})
}

// CreateStore godoc
// @Summary Create a store under a merchant
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StoreRequest true "Store payload"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/create [post]
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "merchant_id is required",
			Code:  "INVALID_UUID",
		})
	}

	store := req.toModel()
	store.MerchantID = merchantID

	created, err := h.svc.CreateStore(c.Request().Context(), store)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, Response{Message: "Store added successfully", Data: created})
}

// UpdateStore godoc
// @Summary Update store
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Param request body StoreRequest true "Store payload"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{id} [put]
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid store ID",
			Code:  "INVALID_UUID",
		})
	}

	var req StoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.svc.UpdateStore(c.Request().Context(), id, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Store updated successfully", Data: store})
}

// DeleteStore godoc
// @Summary Delete store
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stores/{id} [delete]
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid store ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.DeleteStore(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Store deleted successfully"})
}
