package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ammica/fuel-backend/internal/metrics"
	"github.com/ammica/fuel-backend/internal/models"
)

// AuditLogger records ledger writes. audit.Logger is the production
// implementation.
type AuditLogger interface {
	LogSale(sale models.Sale)
	LogCustomer(name string, created bool)
	LogReward(name string, points int64)
	LogError(operation, subject string, err error)
}

// LedgerService appends sales and maintains customer loyalty points.
type LedgerService struct {
	db    DB
	audit AuditLogger
}

func NewLedgerService(db DB, audit AuditLogger) *LedgerService {
	return &LedgerService{
		db:    db,
		audit: audit,
	}
}

// AppendSale inserts one sale row. Quantity and price are stored as given.
func (s *LedgerService) AppendSale(ctx context.Context, sale models.Sale) error {
	missing := map[string]string{}
	if sale.FuelType == "" {
		missing["fuel_type"] = "required"
	}
	if sale.Date == "" {
		missing["date"] = "required"
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Missing required fields", Details: missing}
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO sales (fuel_type, quantity, price, date)
		VALUES (?, ?, ?, ?)`),
		sale.FuelType, sale.Quantity, sale.Price, sale.Date)
	if err != nil {
		return s.storeFailure("append_sale", sale.FuelType, err)
	}

	metrics.RecordSale(sale.FuelType)
	s.audit.LogSale(sale)
	return nil
}

// AddCustomer creates a customer with zero points. created is false when a
// customer with the same trimmed name already exists; that is not an error.
func (s *LedgerService) AddCustomer(ctx context.Context, name string) (created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, newValidationError("Customer name is required")
	}

	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO customers (name)
		VALUES (?)
		ON CONFLICT (name) DO NOTHING`), name)
	if err != nil {
		return false, s.storeFailure("add_customer", name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, s.storeFailure("add_customer", name, err)
	}

	created = rowsAffected > 0
	metrics.RecordCustomer(created)
	s.audit.LogCustomer(name, created)
	return created, nil
}

// ApplyReward adds points to the named customer in a single conditional
// update. Zero affected rows means the customer does not exist.
func (s *LedgerService) ApplyReward(ctx context.Context, name string, points int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newValidationError("Name and points are required")
	}
	if points <= 0 {
		return newValidationError("Points must be a positive integer")
	}

	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE customers
		SET points = points + ?
		WHERE name = ?`), points, name)
	if err != nil {
		return s.storeFailure("apply_reward", name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return s.storeFailure("apply_reward", name, err)
	}
	if rowsAffected == 0 {
		return &NotFoundError{Resource: "Customer", Key: name}
	}

	metrics.RecordReward(points)
	s.audit.LogReward(name, points)
	return nil
}

// GetCustomer looks a customer up by trimmed name.
func (s *LedgerService) GetCustomer(ctx context.Context, name string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("Customer name is required")
	}

	var customer models.Customer
	err := s.db.GetContext(ctx, &customer, s.db.Rebind(`
		SELECT id, name, points
		FROM customers
		WHERE name = ?`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Resource: "Customer", Key: name}
	}
	if err != nil {
		return nil, s.storeFailure("get_customer", name, err)
	}

	return &customer, nil
}

func (s *LedgerService) storeFailure(op, subject string, err error) error {
	metrics.RecordStoreError(op)
	s.audit.LogError(op, subject, err)
	return storeError(op, err)
}
