package request

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Organizer User"`
}
