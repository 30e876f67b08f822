package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/idx"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

// PropertyService manages the property registry that codes and tenancies
// hang off. Anything beyond create/list (rent, maintenance, listings)
// belongs to the wider platform.
type PropertyService struct {
	Store store.Store
}

func (s *PropertyService) Create(ctx context.Context, landlordID, name, address string) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	if landlordID == "" {
		return domain.Property{}, invalidf("landlordId is required")
	}
	if name == "" {
		return domain.Property{}, invalidf("name is required")
	}

	now := time.Now().UTC()
	p := domain.Property{
		ID:         idx.New().String(),
		LandlordID: landlordID,
		Name:       name,
		Address:    address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Properties().CreateProperty(ctx, p); err != nil {
		log.Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, err
	}

	log.Info("property created",
		slog.String("property_id", p.ID),
		slog.String("landlord_id", p.LandlordID),
	)
	return p, nil
}

// Get returns a property the landlord owns; others report as not found.
func (s *PropertyService) Get(ctx context.Context, propertyID, landlordID string) (domain.Property, error) {
	p, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	if p.LandlordID != landlordID {
		return domain.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (s *PropertyService) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	if landlordID == "" {
		return nil, invalidf("landlordId is required")
	}
	return s.Store.Properties().ListPropertiesByLandlord(ctx, landlordID)
}

// ListTenanciesByProperty is owner-gated: landlords only see tenancies on
// their own properties.
func (s *PropertyService) ListTenanciesByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.Tenancy, error) {
	if _, err := s.Get(ctx, propertyID, landlordID); err != nil {
		return nil, err
	}
	return s.Store.Tenancies().ListTenanciesByProperty(ctx, propertyID)
}

// ListTenanciesByTenant returns the caller's own tenancies.
func (s *PropertyService) ListTenanciesByTenant(ctx context.Context, tenantID string) ([]domain.Tenancy, error) {
	if tenantID == "" {
		return nil, invalidf("tenant identity is required")
	}
	return s.Store.Tenancies().ListTenanciesByTenant(ctx, tenantID)
}
