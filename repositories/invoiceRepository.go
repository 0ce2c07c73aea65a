package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"PatientBilling/cache"
	"PatientBilling/database"
	"PatientBilling/models"
	"PatientBilling/utils"
)

const (
	InvoiceCacheExpiry = 7 * 24 * time.Hour
)

type InvoiceRepository struct {
	db          *gorm.DB
	cache       *cache.Cache
	redisClient *redis.Client
}

func NewInvoiceRepository(db *gorm.DB, cache *cache.Cache, redisClient *redis.Client) *InvoiceRepository {
	return &InvoiceRepository{db: db, cache: cache, redisClient: redisClient}
}

// Create persists a new pending invoice. Status and creation timestamp are
// assigned here so that every invoice starts Pending with a UTC clock.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	invoice.Status = models.InvoiceStatusPending
	invoice.CreatedAtUtc = time.Now().UTC()
	invoice.PaidAtUtc = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}
		return r.cache.Delete(ctx, r.getPatientInvoicesCacheKey(invoice.PatientID))
	})
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getInvoiceCacheKey(id)
	var cached models.Invoice
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Failed to get invoice from cache: %v", err)
	}

	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, &invoice, InvoiceCacheExpiry); err != nil {
		log.Printf("Failed to set invoice in cache: %v", err)
	}
	return &invoice, nil
}

// GetByPatient returns the invoices of one patient, newest first.
func (r *InvoiceRepository) GetByPatient(ctx context.Context, patientID uint) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientInvoicesCacheKey(patientID)
	var cached []models.Invoice
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Failed to get patient invoices from cache: %v", err)
	}

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at_utc DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices for patient: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, invoices, InvoiceCacheExpiry); err != nil {
		log.Printf("Failed to set patient invoices in cache: %v", err)
	}
	return invoices, nil
}

// Filter runs the invoice query. Supplied predicates are ANDed together;
// results come back newest first. Filter results are parameterized and
// not cached.
func (r *InvoiceRepository) Filter(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Invoice{})

	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.From != nil {
		query = query.Where("created_at_utc >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at_utc <= ?", *filter.To)
	}

	var invoices []models.Invoice
	if err := query.Order("created_at_utc DESC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to filter invoices: %w", err)
	}
	return invoices, nil
}

// Pay transitions a pending invoice to paid. The row is re-read under a
// distributed lock and a row lock inside one transaction, so two
// concurrent calls on the same invoice cannot both observe Pending.
func (r *InvoiceRepository) Pay(ctx context.Context, id uint) (*models.Invoice, error) {
	lockKey := fmt.Sprintf("invoice_lock:%d", id)
	lockValue := uuid.New().String()

	// Retry logic for acquiring lock
	maxRetries := 3
	retryDelay := 500 * time.Millisecond
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, r.redisClient, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock after retries: %w", err)
		}
		return nil, errors.New("failed to acquire lock after retries: lock is held elsewhere")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, r.redisClient, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var invoice models.Invoice
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrInvoiceNotFound
			}
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		if invoice.Status == models.InvoiceStatusPaid {
			return utils.ErrInvoiceAlreadyPaid
		}

		now := time.Now().UTC()
		invoice.Status = models.InvoiceStatusPaid
		invoice.PaidAtUtc = &now

		if err := tx.Model(&models.Invoice{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":      models.InvoiceStatusPaid,
				"paid_at_utc": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to update invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The transaction has committed; stale cache entries are best-effort
	// cleanup, not grounds to fail the payment.
	if err := r.cache.Delete(ctx, r.getInvoiceCacheKey(id)); err != nil {
		log.Printf("Failed to delete invoice cache: %v", err)
	}
	if err := r.cache.Delete(ctx, r.getPatientInvoicesCacheKey(invoice.PatientID)); err != nil {
		log.Printf("Failed to delete patient invoices cache: %v", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) getInvoiceCacheKey(id uint) string {
	return fmt.Sprintf("invoice_cache:%d", id)
}

func (r *InvoiceRepository) getPatientInvoicesCacheKey(patientID uint) string {
	return fmt.Sprintf("patient_invoices_cache:%d", patientID)
}
