// Package export renders report downloads. Workbooks are written as
// SpreadsheetML 2003 XML, which Excel opens natively.
package export

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/darshan/books-service/internal/models"
)

const spreadsheetNS = "urn:schemas-microsoft-com:office:spreadsheet"

// TransactionsWorkbook renders all given transactions as an Excel workbook.
func TransactionsWorkbook(txs []models.Transaction) ([]byte, error) {
	headers := []string{
		"ID", "Firm ID", "Vehicle ID", "RO Number", "RO Ton", "Total Ton",
		"Open Ton", "RO Price", "Open Price", "Total Price", "Date",
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			fmt.Sprintf("%d", t.FirmID),
			fmt.Sprintf("%d", t.VehicleID),
			t.RoNumber,
			fmt.Sprintf("%.3f", t.RoTon),
			fmt.Sprintf("%.3f", t.TotalTon),
			fmt.Sprintf("%.3f", t.OpenTon),
			fmt.Sprintf("%.2f", t.RoPrice),
			fmt.Sprintf("%.2f", t.OpenPrice),
			fmt.Sprintf("%.2f", t.TotalPrice),
			t.TransactionDate.Format("2006-01-02"),
		})
	}
	return workbook("Transactions", headers, rows)
}

// QuickTransactionsWorkbook renders all given ad-hoc transactions as an
// Excel workbook.
func QuickTransactionsWorkbook(txs []models.QuickTransaction) ([]byte, error) {
	headers := []string{
		"ID", "Vehicle No", "Driver Name", "RO Ton", "Open Ton", "Total Ton",
		"RO Amount", "Open Amount", "Total Amount", "Cash", "Online", "Date", "Remarks",
	}
	rows := make([][]string, 0, len(txs))
	for _, q := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", q.ID),
			q.VehicleNo,
			q.DriverName,
			fmt.Sprintf("%.3f", q.RoTon),
			fmt.Sprintf("%.3f", q.OpenTon),
			fmt.Sprintf("%.3f", q.TotalTon),
			fmt.Sprintf("%.2f", q.RoAmount),
			fmt.Sprintf("%.2f", q.OpenAmount),
			fmt.Sprintf("%.2f", q.TotalAmount),
			fmt.Sprintf("%.2f", q.CashAmount),
			fmt.Sprintf("%.2f", q.OnlineAmount),
			q.TransactionDate.Format("2006-01-02"),
			q.Remarks,
		})
	}
	return workbook("Quick Transactions", headers, rows)
}

func workbook(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", spreadsheetNS)
	wb.CreateAttr("xmlns:ss", spreadsheetNS)

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheetName)
	table := ws.CreateElement("Table")

	appendRow(table, headers)
	for _, row := range rows {
		appendRow(table, row)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return out, nil
}

func appendRow(table *etree.Element, cells []string) {
	row := table.CreateElement("Row")
	for _, value := range cells {
		cell := row.CreateElement("Cell")
		data := cell.CreateElement("Data")
		data.CreateAttr("ss:Type", "String")
		data.SetText(value)
	}
}
