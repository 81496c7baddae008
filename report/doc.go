// Package report renders prominence.Result slices as a fixed-width text
// table: columns prom, row, col, elev, crow, ccol, celev, literal "NA" for
// a record with no col (the sea-level-bound case). It is a pure formatting
// collaborator — it never decodes input and never computes prominence
// itself.
package report
