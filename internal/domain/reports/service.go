package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"hrms/internal/domain/employee"
)

// rosterPageSize bounds how many rows a single export walk pulls per query.
const rosterPageSize = 100

type Service struct {
	employees employee.StoreAPI
}

func NewService(employees employee.StoreAPI) *Service {
	return &Service{employees: employees}
}

// collectRoster walks the full employee list page by page so exports see
// every row regardless of how large the roster is.
func (s *Service) collectRoster(ctx context.Context, query employee.ListQuery) ([]employee.EmployeeListItem, error) {
	query.Page = 0
	query.PageSize = rosterPageSize

	var items []employee.EmployeeListItem
	for {
		result, err := s.employees.ListEmployees(ctx, query)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if query.Page >= result.TotalPages-1 || len(result.Items) == 0 {
			return items, nil
		}
		query.Page++
	}
}

func (s *Service) WriteRosterPDF(ctx context.Context, w io.Writer, query employee.ListQuery) error {
	items, err := s.collectRoster(ctx, query)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Roster")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d employees", time.Now().Format("2006-01-02"), len(items)))
	pdf.Ln(10)

	widths := []float64{32, 60, 40, 28, 55, 55}
	headers := []string{"Employee ID", "Full Name", "Position", "Status", "Department", "Company Email"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		row := []string{
			item.EmployeeID,
			item.FullNameEnglish,
			derefOr(rosterPosition(item), ""),
			item.EmploymentStatus,
			derefOr(rosterDepartment(item), ""),
			derefOr(rosterEmail(item), ""),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func (s *Service) WriteRosterXLSX(ctx context.Context, w io.Writer, query employee.ListQuery) error {
	items, err := s.collectRoster(ctx, query)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Employees"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "Full Name (EN)", "Full Name (VN)", "Position", "Status", "Department", "Company Email", "Mobile Phone"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, item := range items {
		values := []any{
			item.EmployeeID,
			item.FullNameEnglish,
			item.FullNameVietnamese,
			derefOr(rosterPosition(item), ""),
			item.EmploymentStatus,
			derefOr(rosterDepartment(item), ""),
			derefOr(rosterEmail(item), ""),
			derefOr(rosterPhone(item), ""),
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func rosterPosition(item employee.EmployeeListItem) *string {
	if item.EmploymentInfo == nil {
		return nil
	}
	return item.EmploymentInfo.PositionEnglish
}

func rosterDepartment(item employee.EmployeeListItem) *string {
	if item.EmploymentInfo == nil || item.EmploymentInfo.Department == nil {
		return nil
	}
	return &item.EmploymentInfo.Department.Name
}

func rosterEmail(item employee.EmployeeListItem) *string {
	if item.ContactInfo == nil {
		return nil
	}
	return item.ContactInfo.CompanyEmail
}

func rosterPhone(item employee.EmployeeListItem) *string {
	if item.ContactInfo == nil {
		return nil
	}
	return item.ContactInfo.MobilePhone
}

func derefOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
