package export

import (
	"io"

	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Quotations"

var headers = []string{
	"ID", "First Name", "Last Name", "Email", "Phone", "Company",
	"Service Type", "Status", "Estimate ID", "Estimate Amount", "Synced",
	"Created At", "Responded At",
}

// XLSXWriter streams quotation rows as a single-sheet workbook.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (XLSXWriter) WriteQuotations(w io.Writer, rows []queries.QuotationListItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errs.Wrap(err, "failed to name sheet")
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return errs.Wrap(err, "failed to open stream writer")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errs.Wrap(err, "failed to create header style")
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		return errs.Wrap(err, "failed to create date style")
	}

	if err := sw.SetColWidth(1, len(headers), 18); err != nil {
		return errs.Wrap(err, "failed to set column width")
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errs.Wrap(err, "failed to write header")
	}

	for i, q := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errs.Wrap(err, "invalid cell")
		}
		if err := sw.SetRow(cell, rowValues(q, dateStyle)); err != nil {
			return errs.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return errs.Wrap(err, "failed to flush sheet")
	}
	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}

func rowValues(q queries.QuotationListItem, dateStyle int) []any {
	values := []any{
		q.ID.String(),
		q.FirstName,
		q.LastName,
		q.Email,
		q.PhoneNumber,
		deref(q.CompanyName),
		q.ServiceType,
		q.Status,
		deref(q.ExternalEstimateID),
		nil,
		q.IsSynced,
		excelize.Cell{StyleID: dateStyle, Value: q.CreatedAt},
		nil,
	}
	if q.ExternalEstimateAmount != nil {
		values[9] = q.ExternalEstimateAmount.InexactFloat64()
	}
	if q.RespondedAt != nil {
		values[12] = excelize.Cell{StyleID: dateStyle, Value: *q.RespondedAt}
	}
	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
