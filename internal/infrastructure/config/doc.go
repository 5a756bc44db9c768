// Package config handles loading and validating configuration for the
// Pulsar demo binaries.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Bearer tokens are never placed in the config file, only paths to
//     token files; point PULSARDEMO_*_TOKEN_FILE at files with
//     restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Broker.URL)
package config
