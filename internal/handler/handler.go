// Package handler exposes the roadmap engine over HTTP.
package handler

import (
	"github.com/valyala/fasthttp"

	json "github.com/goccy/go-json"

	"roadmap-engine/internal/benchmarks"
	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/engine"
	"roadmap-engine/internal/model"
	"roadmap-engine/internal/notify"
	"roadmap-engine/internal/scenario"
)

type Handler struct {
	Scenarios *scenario.Store
	// FromEmail is the notification sender address from configuration.
	FromEmail string
}

// Route dispatches by path and method.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		h.handleCalculate(ctx)
	case "/sensitivity":
		h.handleSensitivity(ctx)
	case "/assumptions":
		h.handleAssumptions(ctx)
	case "/scenarios":
		h.handleScenarios(ctx)
	case "/notify":
		h.handleNotify(ctx)
	case "/healthz":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Process(&req))
}

func (h *Handler) handleSensitivity(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.SensitivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a := req.ResolvedAssumptions()
	points, err := calc.SensitivitySweep(
		req.Properties, req.CashAllocated, a, req.TargetYears,
		req.AnnualIncomeGoal/12, req.Variable,
		calc.SweepRange{Min: req.Min, Max: req.Max, Step: req.Step},
	)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"variable": req.Variable,
		"points":   points,
	})
}

// handleAssumptions serves the defaults, the valid range per field, and
// region-specific suggested rates when a region is given.
func (h *Handler) handleAssumptions(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	resp := map[string]interface{}{
		"defaults": model.DefaultAssumptions(),
		"ranges":   model.AssumptionRanges(),
	}
	if region := string(ctx.QueryArgs().Peek("region")); region != "" {
		resp["suggested"] = benchmarks.SuggestedRates(region)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

type saveScenarioRequest struct {
	Name   string                   `json:"name"`
	Inputs model.CalculationRequest `json:"inputs"`
}

func (h *Handler) handleScenarios(ctx *fasthttp.RequestCtx) {
	if h.Scenarios == nil {
		writeError(ctx, fasthttp.StatusNotFound, "Scenario storage is not configured")
		return
	}

	switch {
	case ctx.IsGet():
		list, err := h.Scenarios.List()
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{"scenarios": list})

	case ctx.IsPost():
		var req saveScenarioRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if req.Name == "" {
			writeError(ctx, fasthttp.StatusBadRequest, "Scenario name is required")
			return
		}
		saved, err := h.Scenarios.Put(req.Name, req.Inputs)
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(ctx, fasthttp.StatusCreated, saved)

	case ctx.IsDelete():
		id := string(ctx.QueryArgs().Peek("id"))
		if id == "" {
			writeError(ctx, fasthttp.StatusBadRequest, "Query parameter id is required")
			return
		}
		if err := h.Scenarios.Delete(id); err != nil {
			writeError(ctx, fasthttp.StatusNotFound, err.Error())
			return
		}
		ctx.SetStatusCode(fasthttp.StatusNoContent)

	default:
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	}
}

type notifyRequest struct {
	To string `json:"to"`
	model.CalculationRequest
}

func (h *Handler) handleNotify(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req notifyRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.To == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Recipient address is required")
		return
	}

	resp := engine.Process(&req.CalculationRequest)
	sale := resp.CalculationResult.SaleScenario
	if sale == nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "No scenario to report; check inputs")
		return
	}

	summary := notify.Summary{
		ProjectedAnnualIncome:  sale.MonthlyIncome * 12,
		ProjectedMonthlyIncome: sale.MonthlyIncome,
		GoalAchieved:           sale.GoalAchieved,
		PropertiesKept:         len(sale.KeptProperties),
		PropertiesSold:         len(sale.PropertiesToSell),
		TotalProperties:        sale.TotalPropertiesAtPeak,
		PortfolioValue:         keptValue(sale),
		TargetYears:            req.TargetYears,
		Assumptions:            req.ResolvedAssumptions(),
	}
	if err := notify.Send(req.To, h.FromEmail, summary); err != nil {
		writeError(ctx, fasthttp.StatusBadGateway, "Failed to send email: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "sent", "to": req.To})
}

func keptValue(s *model.SaleScenario) float64 {
	var total float64
	for _, p := range s.KeptProperties {
		total += p.CurrentValue
	}
	return total
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"Failed to encode response"}`)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
