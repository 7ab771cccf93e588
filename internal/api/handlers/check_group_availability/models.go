package check_group_availability

import (
	"time"

	svcModels "github.com/bonaparks-dev/DR7-empire-sub000/internal/service/availability/models"
)

// GroupMemberItem участник пула в запросе
type GroupMemberItem struct {
	Name string `json:"name"`
	ID   *int64 `json:"id,omitempty"`
}

// CheckGroupRequest HTTP request model
type CheckGroupRequest struct {
	Members   []GroupMemberItem `json:"members"`
	PickupAt  string            `json:"pickupAt"`  // RFC3339
	DropoffAt string            `json:"dropoffAt"` // RFC3339
}

// ConflictItem занятый интервал в ответе
type ConflictItem struct {
	Source       string `json:"source"`
	ID           int64  `json:"id"`
	VehicleName  string `json:"vehicleName,omitempty"`
	VehicleID    *int64 `json:"vehicleId,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BlockedUntil string `json:"blockedUntil"`
	Specific     bool   `json:"specific"`
}

// CheckGroupResponse HTTP response model
type CheckGroupResponse struct {
	Available       bool           `json:"available"`
	ChosenName      string         `json:"chosenName,omitempty"`
	ChosenID        *int64         `json:"chosenId,omitempty"`
	Conflicts       []ConflictItem `json:"conflicts,omitempty"`
	NextAvailableAt *string        `json:"nextAvailableAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CheckGroupRequest) ToServiceRequest() (*svcModels.CheckGroupRequest, error) {
	pickupAt, err := time.Parse(time.RFC3339, r.PickupAt)
	if err != nil {
		return nil, err
	}
	dropoffAt, err := time.Parse(time.RFC3339, r.DropoffAt)
	if err != nil {
		return nil, err
	}

	members := make([]svcModels.GroupMember, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, svcModels.GroupMember{Name: m.Name, ID: m.ID})
	}

	return &svcModels.CheckGroupRequest{
		Members:   members,
		PickupAt:  pickupAt,
		DropoffAt: dropoffAt,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *svcModels.CheckGroupResponse) *CheckGroupResponse {
	out := &CheckGroupResponse{
		Available:  resp.Available,
		ChosenName: resp.ChosenName,
		ChosenID:   resp.ChosenID,
	}

	for _, c := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictItem{
			Source:       string(c.Source),
			ID:           c.ID,
			VehicleName:  c.VehicleName,
			VehicleID:    c.VehicleID,
			Start:        c.Range.Start.Format(time.RFC3339),
			End:          c.Range.End.Format(time.RFC3339),
			BlockedUntil: c.BlockedUntil.Format(time.RFC3339),
			Specific:     c.Specific,
		})
	}

	if resp.NextAvailableAt != nil {
		next := resp.NextAvailableAt.Format(time.RFC3339)
		out.NextAvailableAt = &next
	}

	return out
}
