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

type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	return &SlotController{
		Log:         logger,
		SlotUsecase: slotUsecase,
	}
}

func (ctrl *SlotController) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTimeSlot)
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

	result, err := ctrl.SlotUsecase.CreateTimeSlot(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SlotCreatedSuccess, result)
}

func (ctrl *SlotController) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.SlotUsecase.DeleteTimeSlot(ctx, slotID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotDeletedSuccess, nil)
}

func (ctrl *SlotController) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListTimeSlots{
		LawyerID:      r.URL.Query().Get("lawyer_id"),
		Date:          r.URL.Query().Get("date"),
		AvailableOnly: r.URL.Query().Get("available_only") == "true",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.ListTimeSlots(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotListSuccess, result)
}

func (ctrl *SlotController) ListAvailableDates(w http.ResponseWriter, r *http.Request) {
	lawyerID := chi.URLParam(r, "lawyerID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.ListAvailableDates(ctx, lawyerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotDatesSuccess, result)
}
