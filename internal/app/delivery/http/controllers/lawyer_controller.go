package controllers

import (
	"context"
	"net/http"
	"time"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LawyerController struct {
	Log           *zap.Logger
	LawyerUsecase contracts.LawyerUsecase
}

func NewLawyerController(logger *zap.Logger, lawyerUsecase contracts.LawyerUsecase) *LawyerController {
	return &LawyerController{
		Log:           logger,
		LawyerUsecase: lawyerUsecase,
	}
}

func (ctrl *LawyerController) ListLawyers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LawyerUsecase.ListLawyers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LawyerListSuccess, result)
}

func (ctrl *LawyerController) ListLawyersWithStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.LawyerUsecase.ListLawyersWithStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LawyerStatsSuccess, result)
}

func (ctrl *LawyerController) CreateLawyer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateLawyer)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LawyerUsecase.CreateLawyer(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LawyerCreatedSuccess, result)
}

func (ctrl *LawyerController) DeactivateLawyer(w http.ResponseWriter, r *http.Request) {
	lawyerID := chi.URLParam(r, "lawyerID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.LawyerUsecase.DeactivateLawyer(ctx, lawyerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LawyerDeactivatedSuccess, nil)
}
