package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"rw-be-svc/internal/models"
)

const (
	usersSheet = "Users"
	// DefaultImportPassword is assigned to every imported account
	DefaultImportPassword = "12345678"
)

var userSheetHeaders = []string{"Username", "Name", "Email", "Role", "RT"}

// userRow is one data row of the Users sheet
type userRow struct {
	Line     int
	Username string
	Name     string
	Email    string
	Role     string
	RTNumber string
}

// buildUsersWorkbook renders users into an xlsx workbook with a single Users sheet
func buildUsersWorkbook(users []*models.User) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(usersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range userSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(usersSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(userSheetHeaders))
		f.SetCellStyle(usersSheet, "A1", lastCol+"1", headerStyle)
	}

	for i, user := range users {
		row := i + 2
		f.SetCellValue(usersSheet, fmt.Sprintf("A%d", row), user.Username)
		f.SetCellValue(usersSheet, fmt.Sprintf("B%d", row), user.Name)
		f.SetCellValue(usersSheet, fmt.Sprintf("C%d", row), derefString(user.Email))
		f.SetCellValue(usersSheet, fmt.Sprintf("D%d", row), string(user.Role))
		f.SetCellValue(usersSheet, fmt.Sprintf("E%d", row), derefString(user.RTNumber))
	}

	for i := 1; i <= len(userSheetHeaders); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(usersSheet, col, col, 20)
	}

	// Delete default Sheet1
	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer, nil
}

// parseUsersWorkbook reads the Users sheet. Columns are located by header name.
func parseUsersWorkbook(r io.Reader) ([]userRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrInvalidWorkbook
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(usersSheet); err != nil || idx == -1 {
		return nil, ErrSheetNotFound
	}

	rows, err := f.GetRows(usersSheet)
	if err != nil {
		return nil, ErrInvalidWorkbook
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"username", "name", "email", "role"} {
		if _, ok := columns[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var parsed []userRow
	for i, row := range rows[1:] {
		item := userRow{
			Line:     i + 2,
			Username: cell(row, "username"),
			Name:     cell(row, "name"),
			Email:    cell(row, "email"),
			Role:     strings.ToLower(cell(row, "role")),
			RTNumber: cell(row, "rt"),
		}
		if item.Username == "" && item.Name == "" && item.Email == "" && item.Role == "" {
			continue
		}
		parsed = append(parsed, item)
	}

	return parsed, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
