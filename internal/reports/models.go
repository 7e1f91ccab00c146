package reports

import "fmt"

// Report formats.
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Request describes one report to generate.
type Request struct {
	Format   string
	DaysBack int
}

// Validate validates the request.
func (r *Request) Validate() error {
	if r.Format != FormatPDF && r.Format != FormatCSV {
		return fmt.Errorf("format must be %q or %q", FormatPDF, FormatCSV)
	}
	if r.DaysBack <= 0 || r.DaysBack > 365 {
		return fmt.Errorf("days_back must be between 1 and 365")
	}
	return nil
}
