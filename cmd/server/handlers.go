package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-seating/internal/response"
	"github.com/rhyrak/go-seating/internal/rosterio"
	"github.com/rhyrak/go-seating/internal/seating"
	"github.com/rhyrak/go-seating/internal/validator"
	"github.com/rhyrak/go-seating/pkg/model"
	"github.com/rs/zerolog"
)

type seatingQuery struct {
	Seed *int64 `form:"seed"`
	Rows int    `form:"rows" binding:"omitempty,min=1,max=100"`
	Cols int    `form:"cols" binding:"omitempty,min=1,max=100"`
}

type seatJSON struct {
	Seat    string `json:"seat"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Student string `json:"student"`
}

type seatingPlanJSON struct {
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Seed        int64      `json:"seed"`
	Students    int        `json:"students"`
	Capacity    int        `json:"capacity"`
	Assignments []seatJSON `json:"assignments"`
}

// seatingHandler serves seating plans for a roster loaded at start-up.
type seatingHandler struct {
	students []string
	layout   seating.Configuration
	log      zerolog.Logger
}

func newSeatingHandler(students []string, layout *seating.Configuration, log zerolog.Logger) *seatingHandler {
	return &seatingHandler{
		students: students,
		layout:   *layout,
		log:      log.With().Str("component", "seating_handler").Logger(),
	}
}

// plan builds a seating plan from the request query. On failure the error
// response has already been written and ok is false.
func (h *seatingHandler) plan(ctx *gin.Context) (cfg *seating.Configuration, assignments []model.Assignment, ok bool) {
	var q seatingQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithFields(ctx, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
		return nil, nil, false
	}

	layout := h.layout
	if q.Rows != 0 {
		layout.Rows = q.Rows
	}
	if q.Cols != 0 {
		layout.Cols = q.Cols
	}
	// Always pin a seed so the plan can be requested again.
	seed := int64(seating.Rand64())
	if q.Seed != nil {
		seed = *q.Seed
	}
	cfg = layout.WithSeed(seed)

	assignments, err := seating.Assign(h.students, cfg)
	if err != nil {
		if errors.Is(err, seating.ErrNotEnoughSeats) {
			response.FailWithFields(ctx, http.StatusUnprocessableEntity, response.ErrNotEnoughSeats, map[string]string{
				"detail": err.Error(),
			})
			return nil, nil, false
		}
		h.log.Error().Err(err).Str("request_id", response.RequestID(ctx)).Msg("Seat assignment failed")
		response.Fail(ctx, http.StatusInternalServerError, response.ErrInternal)
		return nil, nil, false
	}

	if valid, msg := seating.Validate(assignments, cfg); !valid {
		h.log.Error().Str("report", msg).Msg("Invalid seating plan")
	}
	h.log.Debug().Int64("seed", seed).Int("rows", cfg.Rows).Int("cols", cfg.Cols).Msg("Seating plan created")
	return cfg, assignments, true
}

func (h *seatingHandler) handleGetSeating(ctx *gin.Context) {
	cfg, assignments, ok := h.plan(ctx)
	if !ok {
		return
	}

	seats := make([]seatJSON, 0, len(assignments))
	for _, a := range assignments {
		seats = append(seats, seatJSON{
			Seat:    a.Seat.Label(),
			Row:     a.Seat.Row,
			Col:     a.Seat.Col,
			Student: a.Student,
		})
	}

	response.Success(ctx, http.StatusOK, seatingPlanJSON{
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		Seed:        *cfg.Seed,
		Students:    len(h.students),
		Capacity:    cfg.Capacity(),
		Assignments: seats,
	})
}

func (h *seatingHandler) handleGetRoom(ctx *gin.Context) {
	cfg, assignments, ok := h.plan(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := rosterio.PrintAssignments(&buf, assignments, cfg.Rows, cfg.Cols); err != nil {
		response.Fail(ctx, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	ctx.Header("X-Seating-Seed", fmt.Sprintf("%d", *cfg.Seed))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h *seatingHandler) handleExportSeating(ctx *gin.Context) {
	cfg, assignments, ok := h.plan(ctx)
	if !ok {
		return
	}

	csvData, err := rosterio.ExportAssignmentsString(assignments)
	if err != nil {
		h.log.Error().Err(err).Msg("CSV export failed")
		response.Fail(ctx, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	ctx.Header("X-Seating-Seed", fmt.Sprintf("%d", *cfg.Seed))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"seating-%d.csv\"", *cfg.Seed))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}
