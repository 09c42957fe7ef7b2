package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dashboard-seed-backend/internal/fixtures"
	"dashboard-seed-backend/internal/models"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Expose DB if needed
func (r *DashboardRepository) DB() *gorm.DB {
	return r.db
}

type Summary struct {
	InvoiceCount  int64 `json:"invoice_count"`
	CustomerCount int64 `json:"customer_count"`
	TotalPaid     int64 `json:"total_paid"`
	TotalPending  int64 `json:"total_pending"`
}

func (r *DashboardRepository) Summary() (*Summary, error) {
	var s Summary

	if err := r.db.Model(&models.Invoice{}).Count(&s.InvoiceCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Customer{}).Count(&s.CustomerCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Invoice{}).
		Where("status = ?", models.InvoiceStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalPaid).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Invoice{}).
		Where("status = ?", models.InvoiceStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalPending).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

// LatestInvoice is an invoice row joined with its customer for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   int64     `json:"amount"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

func (r *DashboardRepository) LatestInvoices(limit int) ([]LatestInvoice, error) {
	var rows []LatestInvoice
	err := r.db.Model(&models.Invoice{}).
		Select("invoices.id, customers.name, customers.email, customers.image_url, invoices.amount, invoices.status, invoices.date").
		Joins("LEFT JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Revenue returns the monthly rows in calendar order. Month labels don't
// sort lexically, so ordering happens here rather than in SQL.
func (r *DashboardRepository) Revenue() ([]models.Revenue, error) {
	var rows []models.Revenue
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	order := make(map[string]int, len(fixtures.MonthOrder))
	for i, m := range fixtures.MonthOrder {
		order[m] = i
	}
	sort.Slice(rows, func(i, j int) bool {
		return order[rows[i].Month] < order[rows[j].Month]
	})

	return rows, nil
}
