package service

import (
	"context"
	"errors"
	"log/slog"

	"flare/internal/domain"
	"flare/internal/observability"
	"flare/internal/store"
	"flare/internal/util"
)

type Store interface {
	FindByPhone(ctx context.Context, phone string) (store.PhoneRegistration, error)
	InsertPhone(ctx context.Context, phone string) (store.PhoneRegistration, error)
}

type EventPublisher interface {
	PublishRegistered(ctx context.Context, rec store.PhoneRegistration) error
}

type IntakeService struct {
	Store Store
	// Events is optional. Publish failures never fail a registration.
	Events EventPublisher
}

// Register validates and normalizes raw, rejects numbers that are already
// stored and inserts the rest. Failures are *domain.Error values.
func (s *IntakeService) Register(ctx context.Context, raw string) (store.PhoneRegistration, error) {
	digits, err := util.NormalizePhone(raw)
	if err != nil {
		observability.Registrations.WithLabelValues("invalid").Inc()
		if errors.Is(err, util.ErrPhoneRequired) {
			return store.PhoneRegistration{}, domain.ValidationError(domain.MsgPhoneRequired, err)
		}
		return store.PhoneRegistration{}, domain.ValidationError(domain.MsgPhoneLength, err)
	}

	// 1) friendly duplicate check; the unique constraint is what actually holds
	if _, err := s.Store.FindByPhone(ctx, digits); err == nil {
		observability.Registrations.WithLabelValues("conflict").Inc()
		return store.PhoneRegistration{}, domain.ConflictError(nil)
	} else if !errors.Is(err, store.ErrNotFound) {
		observability.Registrations.WithLabelValues("error").Inc()
		return store.PhoneRegistration{}, domain.StoreError(err)
	}

	// 2) insert
	rec, err := s.Store.InsertPhone(ctx, digits)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			observability.Registrations.WithLabelValues("conflict").Inc()
			return store.PhoneRegistration{}, domain.ConflictError(err)
		}
		observability.Registrations.WithLabelValues("error").Inc()
		return store.PhoneRegistration{}, domain.StoreError(err)
	}
	observability.Registrations.WithLabelValues("created").Inc()

	// 3) notify
	if s.Events != nil {
		if err := s.Events.PublishRegistered(ctx, rec); err != nil {
			slog.Warn("publish registration event failed",
				"err", err,
				"registration_id", rec.ID,
				"phone", util.MaskPhone(rec.Phone),
			)
		}
	}
	return rec, nil
}
