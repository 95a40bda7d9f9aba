package authorization

type UserRole string

const (
	RoleTechnician      UserRole = "technician"
	RoleSoftwareTech    UserRole = "software_tech"
	RoleAdmin           UserRole = "admin"
	RoleManager         UserRole = "manager"
	RoleRestaurantStaff UserRole = "restaurant_staff"
	RoleWarehouse       UserRole = "warehouse"
)

var validRoles = map[UserRole]bool{
	RoleTechnician:      true,
	RoleSoftwareTech:    true,
	RoleAdmin:           true,
	RoleManager:         true,
	RoleRestaurantStaff: true,
	RoleWarehouse:       true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManage reports whether the role may administer other users and
// assign tickets to arbitrary technicians.
func (r UserRole) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// IsFieldRole reports whether the role performs on-site work and should
// receive new-ticket broadcasts from the helpdesk flow.
func (r UserRole) IsFieldRole() bool {
	return r == RoleTechnician || r == RoleSoftwareTech
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleRestaurantStaff
}
