// Package app ties loading, scheduling and reporting together. It is
// independent of the CLI so the whole run can be driven from tests.
package app
