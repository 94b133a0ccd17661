package roi

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"telematics_roi/internal/domain/entities"
)

var timelineCSVHeader = []string{"month", "calendar_month", "savings", "cost", "net", "cumulative_net"}

// CalendarMonth returns the YYYY-MM label of the 1-indexed timeline month
// counted from startMonth, or "" when startMonth does not parse.
func CalendarMonth(startMonth string, month int) string {
	start, err := time.Parse(entities.StartMonthLayout, startMonth)
	if err != nil {
		return ""
	}
	return start.AddDate(0, month-1, 0).Format(entities.StartMonthLayout)
}

// WriteTimelineCSV writes one row per timeline month. Amounts are written
// with two decimals and no grouping so spreadsheets read them as numbers.
func WriteTimelineCSV(w io.Writer, startMonth string, timeline []entities.TimelineMonth) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineCSVHeader); err != nil {
		return err
	}
	for _, m := range timeline {
		row := []string{
			strconv.Itoa(m.Month),
			CalendarMonth(startMonth, m.Month),
			strconv.FormatFloat(m.Savings, 'f', 2, 64),
			strconv.FormatFloat(m.Cost, 'f', 2, 64),
			strconv.FormatFloat(m.Net, 'f', 2, 64),
			strconv.FormatFloat(m.CumulativeNet, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
