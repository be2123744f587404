package controllers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/Nirmalsaravgi/saasakitech-assignment/stock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notFoundMessage = "No records found"

var csvContentTypes = map[string]bool{
	"text/csv":        true,
	"application/csv": true,
}

type Controller struct {
	service        stock.Usecase
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewController(s stock.Usecase, maxUploadBytes int64, l *zap.Logger) *Controller {
	return &Controller{
		service:        s,
		maxUploadBytes: maxUploadBytes,
		logger:         l,
	}
}

// Upload godoc
// @Summary      Ingest a csv of daily stock records
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      200   {object}  stock.IngestReport
// @Failure      400   {object}  object
// @Failure      413   {object}  object
// @Failure      500   {object}  object
// @Router       /upload [post]
func (ctrl *Controller) Upload(ctx *gin.Context) {
	if ctrl.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, ctrl.maxUploadBytes)
	}

	header, err := ctx.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctrl.logger.Info("rejected upload", zap.Int64("limit", tooLarge.Limit))
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large."})
		return
	}
	if err != nil || !isCSV(header.Header.Get("Content-Type")) {
		ctrl.logger.Info("rejected upload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Please upload a CSV file."})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing file", "error": err.Error()})
		return
	}
	defer file.Close()

	ctrl.logger.Info("upload received", zap.String("file", header.Filename), zap.Int64("size", header.Size))
	report, err := ctrl.service.IngestCSV(ctx.Request.Context(), header.Filename, file)
	if err != nil {
		ctrl.logger.Error("upload failed", zap.String("file", header.Filename), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing file", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HighestVolume godoc
// @Summary      Record with the highest volume in a date range
// @Produce      json
// @Param        start_date  query  string  true   "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "End date (YYYY-MM-DD)"
// @Param        symbol      query  string  false  "Symbol"
// @Router       /api/highest_volume [get]
func (ctrl *Controller) HighestVolume(ctx *gin.Context) {
	result, err := ctrl.service.HighestVolume(ctx.Request.Context(), queryParams(ctx))
	if err != nil {
		ctrl.queryError(ctx, err, "Error retrieving data")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"highest_volume": result})
}

// AverageClose godoc
// @Summary      Average close price of a symbol in a date range
// @Produce      json
// @Param        start_date  query  string  true  "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "End date (YYYY-MM-DD)"
// @Param        symbol      query  string  true  "Symbol"
// @Router       /api/average_close [get]
func (ctrl *Controller) AverageClose(ctx *gin.Context) {
	avg, err := ctrl.service.AverageClose(ctx.Request.Context(), queryParams(ctx))
	if err != nil {
		ctrl.queryError(ctx, err, "Error calculating average close")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"average_close": avg})
}

// AverageVWAP godoc
// @Summary      Average VWAP in a date range
// @Produce      json
// @Param        start_date  query  string  true   "Start date (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "End date (YYYY-MM-DD)"
// @Param        symbol      query  string  false  "Symbol"
// @Router       /api/average_vwap [get]
func (ctrl *Controller) AverageVWAP(ctx *gin.Context) {
	avg, err := ctrl.service.AverageVWAP(ctx.Request.Context(), queryParams(ctx))
	if err != nil {
		ctrl.queryError(ctx, err, "Error calculating average VWAP")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"average_vwap": avg})
}

func (ctrl *Controller) GetIngestion(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "invalid ingestion id"})
		return
	}

	ingestion, err := ctrl.service.GetIngestion(ctx.Request.Context(), id)
	if err != nil {
		ctrl.queryError(ctx, err, "Error retrieving ingestion")
		return
	}

	ctx.JSON(http.StatusOK, ingestion)
}

func (ctrl *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctrl *Controller) queryError(ctx *gin.Context, err error, message string) {
	var missing *stock.MissingParamError
	switch {
	case errors.As(err, &missing):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": missing.Message})
	case errors.Is(err, stock.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	default:
		ctrl.logger.Error(message, zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
	}
}

func queryParams(ctx *gin.Context) stock.QueryParams {
	return stock.QueryParams{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Symbol:    ctx.Query("symbol"),
	}
}

func isCSV(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return csvContentTypes[mediaType]
}
