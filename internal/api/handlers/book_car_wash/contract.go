package book_car_wash

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/usecase/book_car_wash/models"
)

type BookCarWashUseCase interface {
	BookCarWash(ctx context.Context, req *models.BookCarWashRequest) (*models.BookCarWashResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
