package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/usecase"
)

// ReportController handles the sales report endpoints.
type ReportController struct {
	summaryUC     *usecase.SalesSummaryUseCase
	dailyReportUC *usecase.DailyReportUseCase
}

// NewReportController creates a new controller instance.
func NewReportController(
	summaryUC *usecase.SalesSummaryUseCase,
	dailyReportUC *usecase.DailyReportUseCase,
) *ReportController {
	return &ReportController{
		summaryUC:     summaryUC,
		dailyReportUC: dailyReportUC,
	}
}

// RegisterRoutes registers the controller routes.
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/summary", c.Summary)
		reports.GET("/daily", c.DailyReport)
	}

	log.Println("Report routes available:")
	log.Println("  GET    /api/v1/reports/summary")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
}

// Summary handles GET /reports/summary.
func (c *ReportController) Summary(ctx *gin.Context) {
	resp, err := c.summaryUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error generating sales summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DailyReport handles GET /reports/daily?date=YYYY-MM-DD.
func (c *ReportController) DailyReport(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		log.Printf("Error generating daily report: %v", err)

		if strings.Contains(err.Error(), "invalid date format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format", "details": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating daily report", "details": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
