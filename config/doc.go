// Package config handles application configuration loading and validation.
//
// Configuration is read from bussearch.yml, overlaid with BUSSEARCH_*
// environment variables and validated using struct tags. Command-line
// overrides are applied last through Option values.
package config
