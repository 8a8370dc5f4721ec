package tools

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ExportToExcel writes a slice of structs to sheet, one row per element. The header row
// comes from the `excel` tag (field name when absent, "-" skips the field); embedded
// structs are flattened and nil pointers become empty cells.
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return errors.Errorf("export to excel: %T is not a slice", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return errors.Errorf("export to excel: %T is not a slice of structs", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "create sheet %s", sheet)
	}

	columns := excelColumns(elemType, nil)
	for i, col := range columns {
		if err := setCell(f, sheet, i+1, 1, col.header); err != nil {
			return err
		}
	}

	row := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		for j, col := range columns {
			if err := setCell(f, sheet, j+1, row, cellValue(elem.FieldByIndex(col.index))); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

type excelColumn struct {
	index  []int
	header string
}

func excelColumns(t reflect.Type, parent []int) []excelColumn {
	var out []excelColumn
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		idx := append(append([]int(nil), parent...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, excelColumns(sf.Type, idx)...)
			continue
		}

		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		out = append(out, excelColumn{index: idx, header: tag})
	}
	return out
}

func cellValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return ""
		}
		return fv.Elem().Interface()
	}
	return fv.Interface()
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrapf(f.SetCellValue(sheet, cell, value), "set cell %s", cell)
}
