package check_group_availability

import (
	"context"

	"github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckGroup(ctx context.Context, req *models.CheckGroupRequest) (*models.CheckGroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
