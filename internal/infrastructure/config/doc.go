// Package config handles loading and validating the questions service configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with QUESTIONS_* environment variables
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - The InfluxDB token should be set via QUESTIONS_INFLUXDB_TOKEN, not the file
//   - The config file should have restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Path)
package config
