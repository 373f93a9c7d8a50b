// Package file persists configuration on the local filesystem.
//
// ConfigStore keeps settings in a TOML file (config.toml) inside the
// config directory. Values are addressed by dotted keys such as
// "fetch.rate_per_second", which map onto TOML tables.
package file
