// Package enquiries holds the guest-enquiry workflows.
package enquiries

import (
	"context"
	"fmt"

	"sanctum/internal/models"
)

// Store captures the persistence needs for enquiry workflows.
type Store interface {
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	InsertEnquiry(ctx context.Context, e models.Enquiry) (models.Enquiry, error)
	UpdateEnquiryStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error)
}

// Service coordinates enquiry operations.
type Service interface {
	List(ctx context.Context) ([]models.Enquiry, error)
	Create(ctx context.Context, e models.Enquiry) (models.Enquiry, error)
	SetStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Enquiry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListEnquiries(ctx)
}

func (s *service) Create(ctx context.Context, e models.Enquiry) (models.Enquiry, error) {
	if err := ctx.Err(); err != nil {
		return models.Enquiry{}, err
	}
	if e.Status == "" {
		e.Status = models.EnquiryNew
	}
	return s.store.InsertEnquiry(ctx, e)
}

func (s *service) SetStatus(ctx context.Context, id string, status models.EnquiryStatus) (models.Enquiry, error) {
	if err := ctx.Err(); err != nil {
		return models.Enquiry{}, err
	}
	if !models.ValidEnquiryStatus(status) {
		return models.Enquiry{}, fmt.Errorf("unknown enquiry status %q", status)
	}
	return s.store.UpdateEnquiryStatus(ctx, id, status)
}
