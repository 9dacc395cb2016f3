package service

import (
	"time"

	"studio-booking-backend/internal/auth"
	apperrors "studio-booking-backend/internal/errors"
	"studio-booking-backend/internal/repository"

	"github.com/google/uuid"
)

// TeamService exposes the member list of the active studio
type TeamService struct {
	memberships repository.MembershipRepositoryInterface
	profiles    repository.ProfileRepositoryInterface
	roles       repository.RoleRepositoryInterface
}

// NewTeamService creates a new team service
func NewTeamService(
	memberships repository.MembershipRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	roles repository.RoleRepositoryInterface,
) *TeamService {
	return &TeamService{
		memberships: memberships,
		profiles:    profiles,
		roles:       roles,
	}
}

// EmployeeResponse represents a studio member as shown in the team view
type EmployeeResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	RoleName  string    `json:"role_name"`
	RoleLabel string    `json:"role_label"`
	JoinedAt  string    `json:"joined_at"`
}

// GetTenantEmployees lists the members of the caller's active studio with
// their profiles and role names
func (s *TeamService) GetTenantEmployees(claims *auth.SessionClaims) ([]EmployeeResponse, error) {
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.ErrNotTenantMember
	}

	members, err := s.memberships.GetByTenantID(tenantID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.GetAll()
	if err != nil {
		return nil, err
	}
	roleNames := make(map[uuid.UUID]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = string(role.Name)
	}

	responses := make([]EmployeeResponse, 0, len(members))
	for i := range members {
		member := &members[i]
		profile := &member.User
		if profile.ID == uuid.Nil {
			loaded, err := s.profiles.GetByID(member.UserID)
			if err != nil {
				return nil, err
			}
			profile = loaded
		}

		roleName := roleNames[member.RoleID]
		responses = append(responses, EmployeeResponse{
			UserID:    member.UserID,
			Email:     profile.Email,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			FullName:  profile.FullName(),
			Phone:     profile.Phone,
			RoleName:  roleName,
			RoleLabel: auth.RoleLabel(roleName),
			JoinedAt:  member.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}
