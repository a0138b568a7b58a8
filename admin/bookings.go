package admin

import (
	"context"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
)

// CampBookings lists every camp booking, newest first, for picking the
// booking a report is issued against.
func (s *Service) CampBookings(ctx context.Context, c Capability) ([]model.CampBooking, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	out := []model.CampBooking{}
	if err := c.backend.Find(ctx, &model.CampBooking{}, store.Where().OrderByDesc("created_at"), &out); err != nil {
		logStoreError(err, "list", model.CampBooking{}.TableName())
		return nil, apperror.Persistence("Failed to load camp bookings", err)
	}
	return out, nil
}
