package booking

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/models"
	"github.com/appsalute/clinic-booking/internal/storage"
)

const doctorsCacheKey = "doctors"

type ListDoctors struct {
	repo   domain.Repository
	images storage.ImageResolver
	cache  *gocache.Cache
}

// NewListDoctors caches the directory for ttl; a non-positive ttl disables caching.
func NewListDoctors(
	repo domain.Repository,
	images storage.ImageResolver,
	ttl time.Duration,
) *ListDoctors {
	uc := &ListDoctors{repo: repo, images: images}
	if ttl > 0 {
		uc.cache = gocache.New(ttl, 2*ttl)
	}
	return uc
}

func (uc *ListDoctors) Execute(ctx context.Context) ([]models.Doctor, error) {
	if uc.cache != nil {
		if v, ok := uc.cache.Get(doctorsCacheKey); ok {
			return append([]models.Doctor(nil), v.([]models.Doctor)...), nil
		}
	}

	doctors, err := uc.repo.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	for i := range doctors {
		url, err := uc.images.Resolve(ctx, doctors[i].ImagePath)
		if err != nil {
			slog.WarnContext(ctx, "doctor image not resolved", "doctor_id", doctors[i].ID, "err", err)
			continue
		}
		doctors[i].ImagePath = url
	}

	if uc.cache != nil {
		uc.cache.SetDefault(doctorsCacheKey, doctors)
	}
	return append([]models.Doctor(nil), doctors...), nil
}
