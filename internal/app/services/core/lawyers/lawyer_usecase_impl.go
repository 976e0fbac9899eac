package lawyers

import (
	"context"
	"fmt"
	"sync"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type lawyerUsecase struct {
	LawyerRepository contracts.LawyerRepository
	Log              *zap.Logger
}

var (
	lawyerUsecaseInstance contracts.LawyerUsecase
	onceLawyerUsecase     sync.Once
)

func NewLawyerUsecase(lawyerRepository contracts.LawyerRepository, logger *zap.Logger) contracts.LawyerUsecase {
	onceLawyerUsecase.Do(func() {
		lawyerUsecaseInstance = &lawyerUsecase{
			LawyerRepository: lawyerRepository,
			Log:              logger,
		}
	})
	return lawyerUsecaseInstance
}

func (uc *lawyerUsecase) ListLawyers(ctx context.Context) ([]responses.Lawyer, error) {
	lawyers, err := uc.LawyerRepository.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Lawyer, 0, len(lawyers))
	for i := range lawyers {
		response = append(response, buildLawyerResponse(&lawyers[i]))
	}
	return response, nil
}

func (uc *lawyerUsecase) ListLawyersWithStats(ctx context.Context) ([]responses.LawyerWithStats, error) {
	lawyers, err := uc.LawyerRepository.FindAllWithStats(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.LawyerWithStats, 0, len(lawyers))
	for i := range lawyers {
		response = append(response, responses.LawyerWithStats{
			Lawyer:                buildLawyerResponse(&lawyers[i].Lawyer),
			TotalAppointments:     lawyers[i].TotalAppointments,
			ConfirmedAppointments: lawyers[i].ConfirmedAppointments,
		})
	}
	return response, nil
}

func (uc *lawyerUsecase) CreateLawyer(ctx context.Context, request *requests.CreateLawyer) (*responses.Lawyer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("lawyerUsecase.CreateLawyer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lawyer := &models.Lawyer{
		Fullname:  request.Fullname,
		Specialty: request.Specialty,
		Bio:       request.Bio,
		PhotoURL:  request.PhotoURL,
		Active:    true,
	}
	lawyerID, err := uc.LawyerRepository.Insert(ctx, lawyer)
	if err != nil {
		return nil, err
	}

	lawyer.ID = lawyerID
	response := buildLawyerResponse(lawyer)
	return &response, nil
}

func (uc *lawyerUsecase) DeactivateLawyer(ctx context.Context, lawyerID string) error {
	lawyer, err := uc.LawyerRepository.FindByID(ctx, lawyerID)
	if err != nil {
		return err
	}
	if lawyer == nil {
		return exceptions.ErrLawyerNotFound(fmt.Errorf("lawyer %s not found", lawyerID))
	}
	return uc.LawyerRepository.SetActive(ctx, lawyerID, false)
}

func buildLawyerResponse(lawyer *models.Lawyer) responses.Lawyer {
	return responses.Lawyer{
		LawyerID:  lawyer.ID,
		Fullname:  lawyer.Fullname,
		Specialty: lawyer.Specialty,
		Bio:       lawyer.Bio,
		PhotoURL:  lawyer.PhotoURL,
		Active:    lawyer.Active,
	}
}
