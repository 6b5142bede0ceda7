// Package config loads tasks settings.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. Defaults
//  2. Config file (TOML, default <user config dir>/tasks/config.toml)
//  3. Environment variables (TASKS_*, NO_COLOR)
//  4. Command-line flags, applied by the caller
//
// Example config.toml:
//
//	database = "~/tasks.db"
//	table_width = 120
//	border = "ascii"
//	output = "table"
//	log_level = "warn"
//	log_format = "text"
//	color = true
package config
