package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muka28/TopographicProminence/prominence"
)

// Write renders results as a fixed-width table: a header row, a dashed
// separator, then one line per result in the order given — the caller
// (cmd/prominence) is responsible for sorting, since the core already
// returns results in descending-prominence order.
func Write(w io.Writer, results []prominence.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "prom\trow\tcol\telev\tcrow\tccol\tcelev"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "----\t---\t---\t----\t----\t----\t-----"); err != nil {
		return err
	}

	for _, r := range results {
		if r.HasCol {
			if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
				r.Prom, r.PeakRow, r.PeakCol, r.PeakElev, r.ColRow, r.ColCol, r.ColElev); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\tNA\tNA\tNA\n",
			r.Prom, r.PeakRow, r.PeakCol, r.PeakElev); err != nil {
			return err
		}
	}

	return tw.Flush()
}
