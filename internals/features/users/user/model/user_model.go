// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Roles
   ========================= */

const (
	RoleOwner = "owner" // super-admin lintas tenant
	RoleAdmin = "admin" // pemilik tenant (distributor)
	RoleStaff = "staff" // karyawan di bawah satu admin
)

/* =========================
   Model: users
   ========================= */

// User: akun login. Untuk role admin, user_admin_id = user_id (dia
// tenant-nya sendiri). Untuk staff, user_admin_id menunjuk admin
// pemilik tenant. Permissions hanya dibaca untuk staff.
type User struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	UserAdminID uuid.UUID `json:"user_admin_id" gorm:"column:user_admin_id;type:uuid;not null;index"`

	UserName  string `json:"user_name"  gorm:"column:user_name;type:varchar(80);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_email"`

	// bcrypt hash; kosong untuk akun Google-only
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100)"`

	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(10);not null;default:'staff'"`

	// map module → no-access|view|edit|hidden (staff saja)
	UserPermissions datatypes.JSON `json:"user_permissions,omitempty" gorm:"column:user_permissions;type:jsonb"`

	UserGoogleID *string `json:"-" gorm:"column:user_google_id;type:varchar(64);index"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"-"               gorm:"column:user_deleted_at;index"`
}

func (User) TableName() string { return "users" }

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("user_deleted_at IS NULL")
}
