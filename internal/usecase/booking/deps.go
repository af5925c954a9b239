package booking

import "github.com/appsalute/clinic-booking/internal/audit"

// Auditor receives audit events; *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}
