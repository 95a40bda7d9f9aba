package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/biztime"
)

// User is an account in the service organization or at a restaurant site.
// Passwords are stored hashed; hashing lives in infrastructure.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	phone        string
	role         authorization.UserRole
	restaurantID *uint
	isActive     bool
	lastLoginAt  *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash, name, phone string, role authorization.UserRole, restaurantID *uint) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleRestaurantStaff && restaurantID == nil {
		return nil, fmt.Errorf("restaurant staff must belong to a restaurant")
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		restaurantID: restaurantID,
		isActive:     true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	passwordHash string,
	name string,
	phone string,
	role authorization.UserRole,
	restaurantID *uint,
	isActive bool,
	lastLoginAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		restaurantID: restaurantID,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) RestaurantID() *uint {
	return u.restaurantID
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *User) Version() int {
	return u.version
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsFieldTechnician reports whether the user can be assigned tickets.
func (u *User) IsFieldTechnician() bool {
	return u.role.IsFieldRole()
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.version++
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UpdateProfile(name, phone string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.phone = phone
	u.version++
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.version++
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Deactivate() {
	u.isActive = false
	u.version++
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.isActive = true
	u.version++
	u.updatedAt = biztime.NowUTC()
}
