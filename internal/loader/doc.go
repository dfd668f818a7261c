// Package loader reads process sets from CSV and HCL files.
//
// CSV rows are "id,burst,arrival[,priority]", one process per row, with an
// optional header row and '#' comments. HCL files hold one block per
// process:
//
//	process "P1" {
//	  burst    = 2
//	  arrival  = 0
//	  priority = 1
//	}
//
// Values are never coerced: a burst of "2.5" or "two" is an error that
// names the file position and the field.
package loader
