package roster

import (
	"time"

	"shelterhub/models"
	"shelterhub/services/availability"
)

func validateWindow(start, end string) error {
	from, err := availability.TimeToMinutes(start)
	if err != nil {
		return availability.NewInvalidArgument("%v", err)
	}
	to, err := availability.TimeToMinutes(end)
	if err != nil {
		return availability.NewInvalidArgument("%v", err)
	}
	if to <= from {
		return availability.NewInvalidArgument("window %s-%s is empty or inverted", start, end)
	}
	return nil
}

func validateWeekday(day time.Weekday) error {
	if day < time.Sunday || day > time.Saturday {
		return availability.NewInvalidArgument("dayOfWeek %d is out of range", day)
	}
	return nil
}

func validateWorkSchedule(entries []models.WorkScheduleEntry) error {
	for _, entry := range entries {
		if err := validateWeekday(entry.DayOfWeek); err != nil {
			return err
		}
		if err := validateWindow(entry.Start, entry.End); err != nil {
			return err
		}
	}
	return nil
}

func validateScheduleException(exc models.ScheduleException) error {
	if _, err := time.Parse("2006-01-02", exc.Date); err != nil {
		return availability.NewInvalidArgument("malformed exception date %q: want YYYY-MM-DD", exc.Date)
	}
	switch exc.Kind {
	case models.ExceptionUnavailable, models.ExceptionAvailable:
		return nil
	case models.ExceptionModified:
		if exc.Start == "" || exc.End == "" {
			return availability.NewInvalidArgument("modified exception needs both start and end")
		}
		return validateWindow(exc.Start, exc.End)
	default:
		return availability.NewInvalidArgument("unknown exception kind %q", exc.Kind)
	}
}

func validatePetException(exc models.PetException) error {
	if err := validateWeekday(exc.DayOfWeek); err != nil {
		return err
	}
	return validateWindow(exc.Start, exc.End)
}
