// repository/booking_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// BookingRepository is the gorm-backed BookingStore. Status transitions are
// conditional updates keyed on the expected prior status; a write that
// matches no row because the status moved is reported as ErrConflict.
type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

var _ services.BookingStore = (*BookingRepository)(nil)

func (r *BookingRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).Preload("Room").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapStoreErr("load booking", err)
	}
	return &booking, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context, f services.BookingFilter) ([]models.Booking, error) {
	q := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Preload("Room").
		Order("created_at DESC")

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(reference_code) LIKE ?",
			like, like, like, like,
		)
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, wrapStoreErr("list bookings", err)
	}
	return list, nil
}

func (r *BookingRepository) TransitionBooking(ctx context.Context, id uint, from, to models.BookingStatus, updates map[string]interface{}) (*models.Booking, error) {
	res := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(withStatus(updates, to))
	if res.Error != nil {
		return nil, wrapStoreErr("transition booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, explainMiss(ctx, r.DB, id)
	}
	return r.GetBooking(ctx, id)
}

func (r *BookingRepository) CompleteCheckOut(ctx context.Context, id uint, from, to models.BookingStatus, updates map[string]interface{}, rec *models.SettlementRecord) (*models.Booking, error) {
	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", id, from).
			Updates(withStatus(updates, to))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return explainMiss(ctx, tx, id)
		}

		if err := tx.Create(rec).Error; err != nil {
			// the unique index on booking_id means a settlement already
			// exists: a concurrent checkout won the race
			if isDuplicateEntry(err) {
				return services.ErrConflict
			}
			return err
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, services.ErrConflict) || errors.Is(txErr, services.ErrBookingNotFound) {
			return nil, txErr
		}
		return nil, wrapStoreErr("complete checkout", txErr)
	}
	return r.GetBooking(ctx, id)
}

func (r *BookingRepository) GetSettlement(ctx context.Context, bookingID uint) (*models.SettlementRecord, error) {
	var rec models.SettlementRecord
	err := r.DB.WithContext(ctx).Where("booking_id = ?", bookingID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrSettlementNotFound
	}
	if err != nil {
		return nil, wrapStoreErr("load settlement", err)
	}
	return &rec, nil
}

// withStatus builds the column map for a conditional transition without
// touching the caller's map.
func withStatus(updates map[string]interface{}, to models.BookingStatus) map[string]interface{} {
	out := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}
	out["status"] = to
	return out
}

// explainMiss distinguishes a missing row from a lost status race after a
// conditional update touched nothing. It reads through the handle the update
// ran on so the answer comes from the same transaction snapshot.
func explainMiss(ctx context.Context, db *gorm.DB, id uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return wrapStoreErr("recheck booking", err)
	}
	if count == 0 {
		return services.ErrBookingNotFound
	}
	return services.ErrConflict
}

func wrapStoreErr(op string, err error) error {
	if errors.Is(err, services.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", services.ErrStoreUnavailable, op, err)
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
