package roi

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telematics_roi/internal/domain/entities"
)

func TestCalendarMonth(t *testing.T) {
	assert.Equal(t, "2030-01", CalendarMonth("2030-01", 1))
	assert.Equal(t, "2030-12", CalendarMonth("2030-01", 12))
	assert.Equal(t, "2031-02", CalendarMonth("2030-12", 3))
	assert.Equal(t, "", CalendarMonth("Jan 2030", 1))
}

func TestWriteTimelineCSV(t *testing.T) {
	in := referenceInputs()
	r := Calculate(in)

	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, in.StartMonth, r.Timeline))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 37)
	assert.Equal(t, []string{"month", "calendar_month", "savings", "cost", "net", "cumulative_net"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2030-01", rows[1][1])
	assert.Equal(t, "2247.47", rows[1][2])
	assert.Equal(t, "23250.00", rows[1][3])
	assert.Equal(t, "2032-12", rows[36][1])
}

func TestWriteTimelineCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, "2030-01", []entities.TimelineMonth{}))
	assert.Equal(t, "month,calendar_month,savings,cost,net,cumulative_net\n", buf.String())
}
