package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/appsalute/clinic-booking/internal/audit"
	"github.com/appsalute/clinic-booking/internal/db/dbtest"
	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/infra/repository"
	"github.com/appsalute/clinic-booking/internal/models"
	"github.com/appsalute/clinic-booking/internal/timezone"
)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

type countingRepo struct {
	domain.Repository
	listDoctorsCalls int
}

func (r *countingRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	r.listDoctorsCalls++
	return r.Repository.ListDoctors(ctx)
}

// fixedClock pins "now" to 2030-01-01 10:30 in Rome.
func fixedClock() timezone.Clock {
	c := timezone.NewClock("Europe/Rome")
	now := time.Date(2030, 1, 1, 10, 30, 0, 0, c.Loc)
	c.Now = func() time.Time { return now }
	return c
}

type fixture struct {
	db      *gorm.DB
	repo    *repository.BookingGormRepository
	auditor *recordingAuditor
	doctors []models.Doctor
	anna    models.User
	bruno   models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	return &fixture{
		db:      db,
		repo:    repository.NewBookingGormRepository(db),
		auditor: &recordingAuditor{},
		doctors: dbtest.SeedDoctors(t, db),
		anna:    dbtest.SeedUser(t, db, "anna@example.com"),
		bruno:   dbtest.SeedUser(t, db, "bruno@example.com"),
	}
}
