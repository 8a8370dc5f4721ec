package stats

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/sentry/tracing"
	"anvaya-club/tools"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Activity Statistics"

type YearReq struct {
	Year *int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// ActivityStatistics returns activity counts per wing, optionally for one year.
func ActivityStatistics(c *gin.Context) {
	var req YearReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	result, err := load(tracing.ContextWithSpan(c), req.Year)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, result)
}

// ExportActivityStatistics sends the same table as an .xlsx download.
func ExportActivityStatistics(c *gin.Context) {
	var req YearReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	result, err := load(tracing.ContextWithSpan(c), req.Year)
	if err != nil {
		response.Fail(c, err)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn("close workbook failed", "error", err)
		}
	}()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	if err := tools.ExportToExcel(f, exportSheet, result.Statistics); err != nil {
		log.Error("export statistics failed", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	if err := tools.SendExcel(c, f, exportName(req.Year)); err != nil {
		log.Error("send statistics workbook failed", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
	}
}

func load(ctx context.Context, year *int) (Result, error) {
	return cache.Load(ctx, deps.Cache, cache.StatsKey(year), func() (Result, error) {
		rows, err := deps.Repo.GetAllActivitiesWithWings(ctx)
		if err != nil {
			return Result{}, err
		}
		return Compute(rows, year), nil
	})
}

func exportName(year *int) string {
	if year == nil {
		return "activity-statistics.xlsx"
	}
	return fmt.Sprintf("activity-statistics-%d.xlsx", *year)
}
