package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayStart trunca t para meia-noite no próprio fuso de t.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayWindow devolve [meia-noite, meia-noite+24h) do dia de t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.Add(24 * time.Hour)
}

// MonthWindow devolve [primeiro dia do mês, primeiro dia do mês seguinte).
func MonthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// ParseDate interpreta "2006-01-02" no fuso informado.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// ParseDateTime interpreta data + hora ("2006-01-02" e "15:04") no fuso informado.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}
