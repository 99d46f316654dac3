package services

import (
	"github.com/stretchr/testify/mock"

	"github.com/ammica/fuel-backend/internal/models"
)

type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) LogSale(sale models.Sale) {
	m.Called(sale)
}

func (m *MockAuditLogger) LogCustomer(name string, created bool) {
	m.Called(name, created)
}

func (m *MockAuditLogger) LogReward(name string, points int64) {
	m.Called(name, points)
}

func (m *MockAuditLogger) LogError(operation, subject string, err error) {
	m.Called(operation, subject, err)
}
