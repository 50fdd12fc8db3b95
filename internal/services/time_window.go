package services

import (
	"trip-itinerary-service/internal/domain"
)

// dayWindow is a day's usable operating window in fractional hours since
// midnight, already clamped by flight constraints.
type dayWindow struct {
	startHour float64
	endHour   float64
}

func (w dayWindow) hours() float64 { return w.endHour - w.startHour }

// computeDayWindow derives the operating window for one trip day.
// Day 1 starts no earlier than flight arrival plus a rest buffer; the final
// day ends no later than flight departure minus the airport lead time.
// Windows shorter than MinWindowHours mark pure arrival/departure days.
func computeDayWindow(day, totalDays int, trip *domain.Trip, cfg Config) (dayWindow, error) {
	w := dayWindow{startHour: cfg.DayStartHour, endHour: cfg.DayEndHour}

	if day == 1 {
		arrival, ok, err := domain.ParseClock(trip.ArrivalTime)
		if err != nil {
			return dayWindow{}, err
		}
		if ok && arrival+cfg.ArrivalBufferHours > w.startHour {
			w.startHour = arrival + cfg.ArrivalBufferHours
		}
	}

	if day == totalDays {
		departure, ok, err := domain.ParseClock(trip.DepartureTime)
		if err != nil {
			return dayWindow{}, err
		}
		if ok && departure-cfg.DepartureBufferHours < w.endHour {
			w.endHour = departure - cfg.DepartureBufferHours
		}
	}

	return w, nil
}
