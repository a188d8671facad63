package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/service"
)

// MachineHandler handles soundbox machine endpoints.
type MachineHandler struct {
	svc service.MachineService
}

// NewMachineHandler creates a new machine handler.
func NewMachineHandler(svc service.MachineService) *MachineHandler {
	return &MachineHandler{svc: svc}
}

// MachineRequest carries the machine provisioning form fields. VolumeLevel
// arrives as a digit string because the dashboard submits form values as
// strings.
type MachineRequest struct {
	AssignedStoreID string `json:"assigned_store_id" validate:"omitempty,uuid"`
	MachineID       string `json:"machine_id" validate:"required"`
	SerialNumber    string `json:"serial_number" validate:"required"`
	Brand           string `json:"brand" validate:"required"`
	Model           string `json:"model" validate:"required"`
	FirmwareVersion string `json:"firmware_version" validate:"required"`
	HardwareVersion string `json:"hardware_version" validate:"required"`
	QRCodeURL       string `json:"qr_code_url" validate:"required,url"`
	UpiID           string `json:"upi_id" validate:"required"`
	MerchantName    string `json:"merchant_name" validate:"required"`
	SimNumber       string `json:"sim_number" validate:"required,len=10,numeric"`
	SimOperator     string `json:"sim_operator" validate:"required"`
	VolumeLevel     string `json:"volume_level" validate:"required,numeric"`
	Language        string `json:"language" validate:"required"`
	Remarks         string `json:"remarks"`
}

func (r MachineRequest) toModel() *model.Machine {
	volume, _ := strconv.Atoi(r.VolumeLevel)
	return &model.Machine{
		MachineID:       r.MachineID,
		SerialNumber:    r.SerialNumber,
		Brand:           r.Brand,
		Model:           r.Model,
		FirmwareVersion: r.FirmwareVersion,
		HardwareVersion: r.HardwareVersion,
		QRCodeURL:       r.QRCodeURL,
		UpiID:           r.UpiID,
		MerchantName:    r.MerchantName,
		SimNumber:       r.SimNumber,
		SimOperator:     r.SimOperator,
		VolumeLevel:     volume,
		Language:        r.Language,
		Remarks:         r.Remarks,
	}
}

// ListMachines godoc
// @Summary List all machines
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines [get]
func (h *MachineHandler) ListMachines(c echo.Context) error {
	machines, err := h.svc.ListMachines(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "machines fetched", Data: machines})
}

// ListByStore godoc
// @Summary List machines assigned to a store
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/store/{storeId} [get]
func (h *MachineHandler) ListByStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid store ID",
			Code:  "INVALID_UUID",
		})
	}

	machines, err := h.svc.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "machines fetched", Data: machines})
}

// CreateMachine godoc
// @Summary Provision a machine for a store
// @Tags machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MachineRequest true "Machine payload"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines [post]
func (h *MachineHandler) CreateMachine(c echo.Context) error {
	var req MachineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storeID, err := uuid.Parse(req.AssignedStoreID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "assigned_store_id is required",
			Code:  "INVALID_UUID",
		})
	}

	machine := req.toModel()
	machine.AssignedStoreID = storeID

	created, err := h.svc.CreateMachine(c.Request().Context(), machine)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, Response{Message: "Machine added successfully", Data: created})
}

// UpdateMachine godoc
// @Summary Update machine
// @Tags machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param request body MachineRequest true "Machine payload"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid machine ID",
			Code:  "INVALID_UUID",
		})
	}

	var req MachineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	machine, err := h.svc.UpdateMachine(c.Request().Context(), id, req.toModel())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Machine updated successfully", Data: machine})
}

// DeleteMachine godoc
// @Summary Delete machine
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /machines/{id} [delete]
func (h *MachineHandler) DeleteMachine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid machine ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.svc.DeleteMachine(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, Response{Message: "Machine deleted successfully"})
}
