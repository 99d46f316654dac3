package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ammica/fuel-backend/internal/services"
)

// AddCustomerRequest is the body of POST /api/customers.
type AddCustomerRequest struct {
	Name string `json:"name" validate:"required" example:"Alice"`
}

// RewardRequest is the body of POST /api/reward. Points accepts a JSON
// number or a numeric string with an integral value, so 5, "5", 5.0 and
// 1e2 are all valid.
type RewardRequest struct {
	Name   string      `json:"name" validate:"required" example:"Alice"`
	Points json.Number `json:"points" validate:"required" swaggertype:"integer" example:"5"`
}

type CustomerHandler struct {
	ledger    *services.LedgerService
	validator *services.ValidationHelper
}

func NewCustomerHandler(ledger *services.LedgerService) *CustomerHandler {
	return &CustomerHandler{
		ledger:    ledger,
		validator: services.NewValidationHelper(),
	}
}

// AddCustomer registers a loyalty customer
// @Summary Add a customer
// @Description Create a customer with zero points. An existing name is reported as a warning, not an error.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body AddCustomerRequest true "Customer"
// @Success 201 {object} MessageResponse
// @Success 200 {object} WarningResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req AddCustomerRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Customer name is required", http.StatusBadRequest, err)
		return
	}

	created, err := h.ledger.AddCustomer(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !created {
		services.SendJSON(w, http.StatusOK, WarningResponse{Warning: "Customer already exists"})
		return
	}

	services.SendJSON(w, http.StatusCreated, MessageResponse{Message: "Customer added successfully"})
}

// ApplyReward adds loyalty points to a customer
// @Summary Reward points
// @Description Atomically increase a customer's points by a positive integer amount
// @Tags customers
// @Accept json
// @Produce json
// @Param request body RewardRequest true "Reward"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /reward [post]
func (h *CustomerHandler) ApplyReward(w http.ResponseWriter, r *http.Request) {
	var req RewardRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Name and points are required", http.StatusBadRequest, err)
		return
	}

	points, err := parsePoints(req.Points)
	if err != nil {
		services.SendErrorResponse(w, "Invalid points value", http.StatusBadRequest, nil)
		return
	}

	if err := h.ledger.ApplyReward(r.Context(), req.Name, points); err != nil {
		writeServiceError(w, r, err)
		return
	}

	services.SendJSON(w, http.StatusOK, MessageResponse{Message: "Points updated successfully"})
}

// GetCustomer returns a customer and their points
// @Summary Get a customer
// @Description Look a customer up by name
// @Tags customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} models.Customer
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /customers/{name} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.ledger.GetCustomer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	services.SendJSON(w, http.StatusOK, customer)
}

var errNotInteger = errors.New("points must be an integral value")

func parsePoints(n json.Number) (int64, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, errNotInteger
	}
	return d.IntPart(), nil
}
