// Package influxdb records forum query telemetry in InfluxDB.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched non-blocking writes and health monitoring. A connected
// Client satisfies forum.Observer, so every statement the store issues can
// be recorded as a point:
//
//	forum_queries,op=question_follows.most_followed,status=ok rows=3i,duration_ms=0.41
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store.SetObserver(client)
//
// # Error Handling
//
// Writes are batched and asynchronous. Batch failures reach the SetOnError
// callback wrapped in ErrWriteFailed. Connection and health check errors are
// returned directly.
package influxdb
