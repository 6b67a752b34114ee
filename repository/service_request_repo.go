// repository/service_request_repo.go
package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"

	"gorm.io/gorm"
)

// ServiceRequestRepository is the gorm-backed ServiceRequestStore, using the
// same conditional-update scheme as bookings.
type ServiceRequestRepository struct {
	DB *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{DB: db}
}

var _ services.ServiceRequestStore = (*ServiceRequestRepository)(nil)

func (r *ServiceRequestRepository) GetServiceRequest(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.DB.WithContext(ctx).First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrServiceRequestNotFound
	}
	if err != nil {
		return nil, wrapStoreErr("load service request", err)
	}
	return &request, nil
}

func (r *ServiceRequestRepository) ListByBookingID(ctx context.Context, bookingID uint) ([]models.ServiceRequest, error) {
	var list []models.ServiceRequest
	err := r.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, wrapStoreErr("list service requests", err)
	}
	return list, nil
}

func (r *ServiceRequestRepository) CreateServiceRequest(ctx context.Context, sr *models.ServiceRequest) error {
	if err := r.DB.WithContext(ctx).Create(sr).Error; err != nil {
		return wrapStoreErr("create service request", err)
	}
	return nil
}

func (r *ServiceRequestRepository) TransitionServiceRequest(ctx context.Context, id uint, from, to models.ServiceRequestStatus) (*models.ServiceRequest, error) {
	res := r.DB.WithContext(ctx).Model(&models.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return nil, wrapStoreErr("transition service request", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.ServiceRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, wrapStoreErr("recheck service request", err)
		}
		if count == 0 {
			return nil, services.ErrServiceRequestNotFound
		}
		return nil, services.ErrConflict
	}
	return r.GetServiceRequest(ctx, id)
}
