package handlers

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/logic"
)

// MaxBodySize limits the size of request bodies to 64KB
const MaxBodySize = 65536

// ReadinessChecker reports the health of the session's dependencies
type ReadinessChecker interface {
	Checks(ctx context.Context) map[string]bool
}

type Config struct {
	Readiness ReadinessChecker
	Logger    *zap.Logger
	// Services
	Options    logic.OptionsService
	Overview   logic.OverviewService
	TeamStats  logic.TeamStatsService
	Tournament logic.TournamentService
	Prediction logic.PredictionService
}

type Handler struct {
	readiness  ReadinessChecker
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	options    logic.OptionsService
	overview   logic.OverviewService
	teamStats  logic.TeamStatsService
	tournament logic.TournamentService
	prediction logic.PredictionService
}

func New(cfg Config) *Handler {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		readiness:  cfg.Readiness,
		logger:     cfg.Logger.Sugar(),
		validator:  v,
		options:    cfg.Options,
		overview:   cfg.Overview,
		teamStats:  cfg.TeamStats,
		tournament: cfg.Tournament,
		prediction: cfg.Prediction,
	}
}
