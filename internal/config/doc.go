// Package config loads MentorHub CLI settings in three layers: compiled-in
// defaults, an optional JSON file (-c/-config), and command-line flags.
// Later layers override earlier ones.
package config
