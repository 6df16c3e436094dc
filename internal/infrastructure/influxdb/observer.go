package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// queryMeasurement is the measurement every forum statement is recorded under.
const queryMeasurement = "forum_queries"

// Status tag values.
const (
	statusOK    = "ok"
	statusError = "error"
)

// ObserveQuery records one forum statement. It satisfies forum.Observer.
//
// The write is non-blocking; points are batched and sent asynchronously.
// Nothing is recorded once the client is closed.
func (c *Client) ObserveQuery(op string, rows int, elapsed time.Duration, err error) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(queryPoint(op, rows, elapsed, err, time.Now()))
}

// queryPoint builds the forum_queries point for one statement.
func queryPoint(op string, rows int, elapsed time.Duration, err error, at time.Time) *write.Point {
	status := statusOK
	if err != nil {
		status = statusError
	}

	return write.NewPoint(
		queryMeasurement,
		map[string]string{
			"op":     op,
			"status": status,
		},
		map[string]interface{}{
			"rows":        rows,
			"duration_ms": float64(elapsed) / float64(time.Millisecond),
		},
		at,
	)
}
