package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/service"
)

// MerchantHandler handles merchant endpoints.
type MerchantHandler struct {
	svc service.MerchantService
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(svc service.MerchantService) *MerchantHandler {
	return &MerchantHandler{svc: svc}
}

// MerchantRequest carries the merchant onboarding form fields.
type MerchantRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	MobileNumber           string `json:"mobile_number" validate:"required,len=10,numeric"`
	CompanyName            string `json:"company_name" validate:"required"`
	Address                string `json:"address" validate:"required"`
	City                   string `json:"city" validate:"required"`
	State                  string `json:"state" validate:"required"`
	Country                string `json:"country" validate:"required"`
	ZipCode                string `json:"zip_code" validate:"required,min=4,max=6,numeric"`
	PanNumber              string `json:"pan_number" validate:"required"`
	GstNumber              string `json:"gst_number" validate:"required"`
	TemporaryAccountNumber string `json:"temporary_account_number" validate:"required"`
}

func (r MerchantRequest) toModel() *model.Merchant {
	return &model.Merchant{
		Name:                   r.Name,
		Email:                  r.Email,
		MobileNumber:           r.MobileNumber,
		CompanyName:            r.CompanyName,
		Address:                r.Address,
		City:                   r.City,
		State:                  r.State,
		Country:                r.Country,
		ZipCode:                r.ZipCode,
		PanNumber:              r.PanNumber,
		GstNumber:              r.GstNumber,
		TemporaryAccountNumber: r.TemporaryAccountNumber,
	}
}

// StoresByMerchantRequest selects a merchant whose stores are listed.
type StoresByMerchantRequest struct {
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
}

// SearchByMobile godoc
// @Summary Search merchants by exact mobile number
// @Tags merchants
// @Produce json
// @Security BearerAuth
// @Param mobile_number query string true "Mobile number"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /merchants/search/mobile [get]
func (h *MerchantHandler) SearchByMobile(c echo.Context) error {
	mobile := c.QueryParam("mobile_number")
	if mobile == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "mobile_number is required",
			Code:  "MOBILE_REQUIRED",
		})
	}

	merchants, err := h.svc.SearchByMobile(c.Request().Context(), mobile)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	// No match is 200 with an empty data array, never a 404.
	return c.JSON(http.StatusOK, Response{Message: "merchants fetched", Data: merchants})
}

// GetMerchant godoc
// @Summary Get merchant by id
// @Tags merchants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /merchants/{id} [get]
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid merchant ID",
			Code:  "INVALID_UUID",
		})
	}

	merchant, err := h.svc.GetMerchant(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "merchant fetched", Data: merchant})
}

// CreateMerchant godoc
// @Summary Onboard a merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MerchantRequest true "Merchant payload"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /merchants/add [post]
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	var req MerchantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	merchant, err := h.svc.CreateMerchant(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, Response{Message: "Merchant added successfully", Data: merchant})
}

// UpdateMerchant godoc
// @Summary Update merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Param request body MerchantRequest true "Merchant payload"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /merchants/update/{id} [put]
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid merchant ID",
			Code:  "INVALID_UUID",
		})
	}

	var req MerchantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	merchant, err := h.svc.UpdateMerchant(c.Request().Context(), id, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Merchant updated successfully", Data: merchant})
}

// DeleteMerchant godoc
// @Summary Delete merchant
// @Tags merchants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /merchant/delete/{id} [delete]
func (h *MerchantHandler) DeleteMerchant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid merchant ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.DeleteMerchant(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Merchant deleted successfully"})
}

// ListMerchants godoc
// @Summary List all merchants
// @Tags merchants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /merchant/list [get]
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	merchants, err := h.svc.ListMerchants(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "merchants fetched", Data: merchants})
}
