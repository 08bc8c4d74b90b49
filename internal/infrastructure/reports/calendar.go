package reports

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"moto_workshop/internal/domain/entities"
)

const calendarProductID = "-//moto_workshop//schedule//EN"

// MechanicCalendar renders one VEVENT per scheduled job. Jobs without an end
// (no duration known) are emitted as zero-length events at their start.
func MechanicCalendar(mechanic entities.Mechanic, orders []entities.WorkOrder, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName(fmt.Sprintf("%s workshop jobs", mechanic.Name))

	for _, wo := range orders {
		if wo.ScheduledStart == nil {
			continue
		}
		start := *wo.ScheduledStart
		end := start
		if wo.ScheduledEnd != nil {
			end = *wo.ScheduledEnd
		}

		evt := cal.AddEvent(fmt.Sprintf("%s@moto-workshop", wo.ID))
		evt.SetDtStampTime(now)
		if !wo.UpdatedAt.IsZero() {
			evt.SetModifiedAt(wo.UpdatedAt)
		}
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("%s %s", wo.JobNumber, wo.Description))
		evt.SetDescription(fmt.Sprintf("Status: %s\nPriority: %s\nHours: %.2f", wo.Status, wo.Priority, wo.DurationHours()))
	}
	return cal.Serialize()
}
