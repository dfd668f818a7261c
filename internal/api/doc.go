// Package api exposes the schedulers over HTTP.
//
//	POST /api/v1/schedule             run several algorithms (all by default)
//	POST /api/v1/schedule/:algorithm  run one algorithm
//	GET  /health                      liveness probe
//
// Responses use the report.ScheduleResponse shape.
package api
