package tools

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SendExcel renders the workbook into memory first so a write failure can still become
// a JSON error instead of a truncated download.
func SendExcel(c *gin.Context, f *excelize.File, displayName string) error {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return errors.Wrap(err, "render workbook")
	}

	escaped := url.PathEscape(displayName)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	c.Header("Cache-Control", "must-revalidate")
	c.Data(http.StatusOK, ExcelContentType, buf.Bytes())
	return nil
}
