package converter

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/you-humble/garage-ops/internal/model"
)

const (
	partsSheet        = "Parts"
	appointmentsSheet = "Appointments"
	defaultSheet      = "Sheet1"
	columnWidth       = 18
	dateTimeLayout    = "2006-01-02 15:04"
)

var (
	partsHeader = []string{
		"Part ID", "Part Number", "Name", "Category", "Quantity",
		"Minimum Stock", "Unit Price", "Location", "Low Stock", "Updated At",
	}
	appointmentsHeader = []string{
		"Date", "Time", "Customer", "Email", "Phone", "Vehicle",
		"Year", "License Plate", "Services", "Status", "Notes",
	}
)

type xlsxConverter struct{}

func NewXLSXConverter() *xlsxConverter { return &xlsxConverter{} }

func (c *xlsxConverter) PartsToXLSX(parts []*model.Part) ([]byte, error) {
	rows := lo.Map(parts, func(p *model.Part, _ int) []any {
		return []any{
			p.PartID, p.PartNumber, p.Name, p.CategoryID, p.Quantity,
			p.MinimumStock, p.UnitPrice, p.Location, p.IsLowStock(),
			p.UpdatedAt.Format(dateTimeLayout),
		}
	})

	return render(partsSheet, partsHeader, rows)
}

func (c *xlsxConverter) AppointmentsToXLSX(appointments []*model.Appointment) ([]byte, error) {
	rows := lo.Map(appointments, func(a *model.Appointment, _ int) []any {
		return []any{
			a.Date, a.TimeSlot, a.CustomerName, a.CustomerEmail, a.CustomerPhone,
			a.VehicleMake + " " + a.VehicleModel, a.VehicleYear, a.LicensePlate,
			strings.Join(a.ServiceTypes, ", "), string(a.Status), a.Notes,
		}
	})

	return render(appointmentsSheet, appointmentsHeader, rows)
}

func render(sheet string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	headerRow := lo.ToAnySlice(header)
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("header row: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
