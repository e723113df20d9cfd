package handler

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/newsroom/api/transport"
	"github.com/fastygo/newsroom/api/view"
	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/internal/metrics"
	"github.com/fastygo/newsroom/pkg/httpcontext"
	appLogger "github.com/fastygo/newsroom/pkg/logger"
	"github.com/fastygo/newsroom/usecase/report"
)

// ReportService computes video reports and lists past runs.
type ReportService interface {
	Generate(ctx context.Context, filter domain.Filter) (*domain.Report, error)
	History(ctx context.Context, userID string, limit int) ([]domain.ReportRun, error)
}

type ReportHandler struct {
	baseHandler
	reports ReportService
}

func NewReportHandler(reports ReportService, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		reports:     reports,
	}
}

// @Summary Video report page
// @Tags reports
// @Produce html
// @Router /reports/videos [get]
func (h *ReportHandler) Page(ctx *fasthttp.RequestCtx) {
	h.renderPage(ctx, view.NewReportPage(report.FilterForm{}, nil, nil, false))
}

// @Summary Submit the video report form
// @Tags reports
// @Accept x-www-form-urlencoded
// @Produce html
// @Router /reports/videos [post]
func (h *ReportHandler) Submit(ctx *fasthttp.RequestCtx) {
	args := ctx.PostArgs()
	form := report.FilterForm{
		PublicationFrom: string(args.Peek("publication_from")),
		PublicationTo:   string(args.Peek("publication_to")),
		OperationFrom:   string(args.Peek("operation_from")),
		OperationTo:     string(args.Peek("operation_to")),
		Keyword:         string(args.Peek("keyword")),
	}

	filter, verr := report.ParseFilter(&form)
	if verr != nil {
		metrics.RecordReport(metrics.OutcomeInvalid, 0, 0)
		h.renderPage(ctx, view.NewReportPage(form, verr.Fields(), nil, true))
		return
	}

	rep, err := h.generate(ctx, filter)
	if err != nil {
		h.respondHTMLError(ctx, err)
		return
	}
	h.renderPage(ctx, view.NewReportPage(form, nil, rep, true))
}

// @Summary Compute a video report
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} transport.ReportResponse
// @Router /api/v1/reports/videos [post]
func (h *ReportHandler) Generate(ctx *fasthttp.RequestCtx) {
	var form report.FilterForm
	if err := json.Unmarshal(ctx.PostBody(), &form); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), domain.ErrInvalidPayload.Error(), nil))
		return
	}

	filter, verr := report.ParseFilter(&form)
	if verr != nil {
		metrics.RecordReport(metrics.OutcomeInvalid, 0, 0)
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(
			string(domain.ErrCodeInvalid),
			domain.ErrInvalidFilter.Error(),
			transport.ValidationErrorMeta{Fields: verr.Fields(), Results: []domain.ReportRow{}},
		))
		return
	}

	rep, err := h.generate(ctx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewReportResponse(rep))
}

// @Summary Recent report runs of the caller
// @Tags reports
// @Produce json
// @Param limit query int false "number of runs"
// @Router /api/v1/reports/history [get]
func (h *ReportHandler) History(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing user id", nil))
		return
	}

	limit := 0
	if raw := ctx.QueryArgs().Peek("limit"); len(raw) > 0 {
		parsed, err := strconv.Atoi(string(raw))
		if err != nil || parsed < 0 {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "limit must be a non-negative integer", nil))
			return
		}
		limit = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	runs, err := h.reports.History(stdCtx, userID, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewHistory(runs))
}

func (h *ReportHandler) generate(ctx *fasthttp.RequestCtx, filter domain.Filter) (*domain.Report, error) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	started := time.Now()
	rep, err := h.reports.Generate(stdCtx, filter)
	if err != nil {
		metrics.RecordReport(metrics.OutcomeError, 0, time.Since(started))
		appLogger.WithRequestID(stdCtx, h.logger).Error("video report failed", zap.Error(err))
		return nil, err
	}

	outcome := metrics.OutcomeEmpty
	if rep.Computed() {
		outcome = metrics.OutcomeMatched
	}
	metrics.RecordReport(outcome, len(rep.Rows), time.Since(started))
	return rep, nil
}

func (h *ReportHandler) renderPage(ctx *fasthttp.RequestCtx, page view.ReportPage) {
	var buf bytes.Buffer
	if err := view.RenderReport(&buf, page); err != nil {
		h.logger.Error("failed to render report page", zap.Error(err))
		h.respondHTMLError(ctx, err)
		return
	}
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(buf.Bytes())
}
