package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/campus-sim/internal/catalog"
	"github.com/rhyrak/campus-sim/internal/csvio"
	"github.com/rhyrak/campus-sim/internal/scheduler"
	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
	"github.com/rhyrak/campus-sim/pkg/model"
)

const recentRuns = 20

type handlers struct {
	store  *sqlite.Store
	logger *slog.Logger
}

func (h *handlers) getTracks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"tracks":      model.Tracks,
		"backgrounds": model.Backgrounds,
		"routes":      model.Routes,
	})
}

func (h *handlers) plan(ctx *gin.Context) (*model.CurriculumPlan, bool) {
	track := catalog.NormalizeTrack(ctx.Param("track"))
	courses, err := catalog.Load(track)
	if err != nil {
		h.logger.Error("load catalog", "track", track, "error", err)
		ctx.Status(http.StatusInternalServerError)
		return nil, false
	}
	return scheduler.GeneratePlan(track, courses, nil), true
}

func (h *handlers) getPlan(ctx *gin.Context) {
	plan, ok := h.plan(ctx)
	if !ok {
		return
	}
	valid, report := scheduler.ValidatePlan(plan)
	ctx.JSON(http.StatusOK, gin.H{
		"plan":   plan,
		"valid":  valid,
		"report": report,
	})
}

func (h *handlers) getPlanCSV(ctx *gin.Context) {
	plan, ok := h.plan(ctx)
	if !ok {
		return
	}
	data, err := csvio.ExportPlanString(plan)
	if err != nil {
		h.logger.Error("export plan", "track", plan.Track, "error", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+string(plan.Track)+`-plan.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(data))
}

func (h *handlers) getRuns(ctx *gin.Context) {
	runs, err := h.store.ListRuns(ctx.Request.Context(), recentRuns)
	if err != nil {
		h.logger.Error("list runs", "error", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"runs": runs,
	})
}

func (h *handlers) getRun(ctx *gin.Context) {
	run, err := h.store.GetRun(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get run", "id", ctx.Param("id"), "error", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, run)
}

func (h *handlers) postRun(ctx *gin.Context) {
	var req runRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	id, summary, err := simulateAndArchive(ctx.Request.Context(), h.store, h.logger, req)
	if err != nil {
		h.logger.Error("simulate", "error", err)
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"id":      id,
		"summary": summary,
	})
}
