package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ammica/fuel-backend/internal/models"
)

const (
	EventSale     = "SALE"
	EventCustomer = "CUSTOMER"
	EventReward   = "REWARD"
	EventError    = "ERROR"
)

// Logger writes one structured entry per ledger write.
type Logger struct {
	log *logrus.Entry
	now func() time.Time
}

// NewLogger returns an audit logger writing through l. A nil l uses the
// logrus standard logger.
func NewLogger(l *logrus.Logger) *Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Logger{
		log: l.WithField("component", "audit"),
		now: time.Now,
	}
}

func (a *Logger) LogSale(sale models.Sale) {
	a.entry(EventSale, "SUCCESS").WithFields(logrus.Fields{
		"fuel_type": sale.FuelType,
		"quantity":  sale.Quantity,
		"price":     sale.Price,
		"date":      sale.Date,
	}).Info("sale logged")
}

func (a *Logger) LogCustomer(name string, created bool) {
	status := "SUCCESS"
	if !created {
		status = "EXISTS"
	}
	a.entry(EventCustomer, status).WithField("customer", name).Info("customer add")
}

func (a *Logger) LogReward(name string, points int64) {
	a.entry(EventReward, "SUCCESS").WithFields(logrus.Fields{
		"customer": name,
		"points":   points,
	}).Info("points rewarded")
}

func (a *Logger) LogError(operation, subject string, err error) {
	a.entry(EventError, "FAILED").WithFields(logrus.Fields{
		"operation": operation,
		"subject":   subject,
	}).WithError(err).Error("ledger write failed")
}

func (a *Logger) entry(eventType, status string) *logrus.Entry {
	return a.log.WithFields(logrus.Fields{
		"event_id":   uuid.NewString(),
		"event_type": eventType,
		"status":     status,
	}).WithTime(a.now())
}
