package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammica/fuel-backend/internal/models"
	"github.com/ammica/fuel-backend/internal/services"
)

// LogSaleRequest is the body of POST /api/sales. Quantity and price accept
// a JSON number or a numeric string.
type LogSaleRequest struct {
	FuelType string           `json:"fuel_type" validate:"required" example:"diesel"`
	Quantity *decimal.Decimal `json:"quantity" validate:"required" swaggertype:"number" example:"10"`
	Price    *decimal.Decimal `json:"price" validate:"required" swaggertype:"number" example:"2.5"`
	Date     string           `json:"date" validate:"required" example:"2024-01-01"`
}

type SalesHandler struct {
	ledger    *services.LedgerService
	validator *services.ValidationHelper
}

func NewSalesHandler(ledger *services.LedgerService) *SalesHandler {
	return &SalesHandler{
		ledger:    ledger,
		validator: services.NewValidationHelper(),
	}
}

// LogSale appends a sale to the ledger
// @Summary Log a fuel sale
// @Description Append one sale record with fuel type, quantity, unit price and date
// @Tags sales
// @Accept json
// @Produce json
// @Param request body LogSaleRequest true "Sale"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /sales [post]
func (h *SalesHandler) LogSale(w http.ResponseWriter, r *http.Request) {
	var req LogSaleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Missing required fields", http.StatusBadRequest, err)
		return
	}

	sale := models.Sale{
		FuelType: req.FuelType,
		Quantity: req.Quantity.InexactFloat64(),
		Price:    req.Price.InexactFloat64(),
		Date:     req.Date,
	}
	if err := h.ledger.AppendSale(r.Context(), sale); err != nil {
		writeServiceError(w, r, err)
		return
	}

	services.SendJSON(w, http.StatusCreated, MessageResponse{Message: "Sale logged successfully"})
}
