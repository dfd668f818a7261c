// Package report renders scheduling results for people and machines: a
// console report built with tablewriter and a JSON document that shares its
// shape with the HTTP API.
package report
