package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ammica/fuel-backend/internal/metrics"
	"github.com/ammica/fuel-backend/internal/models"
)

// ReportService runs the read-only aggregate reports over the sales ledger.
type ReportService struct {
	db  DB
	log *logrus.Entry
}

func NewReportService(db DB) *ReportService {
	return &ReportService{
		db:  db,
		log: logrus.WithField("component", "reports"),
	}
}

// SalesByType sums quantity per fuel type.
func (s *ReportService) SalesByType(ctx context.Context, filter DateFilter) ([]models.FuelTypeTotal, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, args := aggregateQuery{
		columns: []string{"fuel_type", "SUM(quantity) AS total_quantity"},
		groupBy: "fuel_type",
		orderBy: "fuel_type",
		filter:  filter,
	}.build()

	rows := []models.FuelTypeTotal{}
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, s.storeFailure("sales_by_type", filter, err)
	}
	return rows, nil
}

// SalesOverTime sums quantity*price per date, ascending by date.
func (s *ReportService) SalesOverTime(ctx context.Context, filter DateFilter) ([]models.DailyTotal, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, args := aggregateQuery{
		columns: []string{"date", "SUM(quantity * price) AS total_sales"},
		groupBy: "date",
		orderBy: "date ASC",
		filter:  filter,
	}.build()

	rows := []models.DailyTotal{}
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, s.storeFailure("sales_over_time", filter, err)
	}
	return rows, nil
}

// CombinedReport returns quantity and revenue per fuel type.
func (s *ReportService) CombinedReport(ctx context.Context, filter DateFilter) ([]models.FuelTypeReport, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, args := aggregateQuery{
		columns: []string{
			"fuel_type",
			"SUM(quantity) AS total_quantity",
			"SUM(quantity * price) AS total_revenue",
		},
		groupBy: "fuel_type",
		orderBy: "fuel_type",
		filter:  filter,
	}.build()

	rows := []models.FuelTypeReport{}
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, s.storeFailure("reports", filter, err)
	}
	return rows, nil
}

func (s *ReportService) storeFailure(op string, filter DateFilter, err error) error {
	metrics.RecordStoreError(op)
	wrapped := &StoreError{Op: op, Err: err}
	s.log.WithFields(logrus.Fields{
		"op":         op,
		"filter":     filter.Mode,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
		"sqlstate":   wrapped.Code(),
	}).WithError(err).Error("report query failed")
	return wrapped
}
