package contracts

import (
	"context"

	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
)

type LawyerRepository interface {
	FindByID(ctx context.Context, lawyerID string) (*models.Lawyer, error)
	FindAll(ctx context.Context, activeOnly bool) ([]models.Lawyer, error)
	FindAllWithStats(ctx context.Context) ([]models.LawyerWithStats, error)
	Insert(ctx context.Context, lawyer *models.Lawyer) (string, error)
	SetActive(ctx context.Context, lawyerID string, active bool) error
}

type LawyerUsecase interface {
	ListLawyers(ctx context.Context) ([]responses.Lawyer, error)
	ListLawyersWithStats(ctx context.Context) ([]responses.LawyerWithStats, error)
	CreateLawyer(ctx context.Context, request *requests.CreateLawyer) (*responses.Lawyer, error)
	DeactivateLawyer(ctx context.Context, lawyerID string) error
}
