package constants

import "fmt"

// Role yang dikenal aplikasi. Satu profil = satu role.
// "pending" = baru sign-in, belum di-approve admin → tidak boleh akses fitur apapun.
const (
	RoleAdmin   = "admin"
	RoleDai     = "dai"
	RolePending = "pending"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyApprovedCanAccess = "❌ Akun Anda belum di-approve admin untuk mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorApproved(feature string) string {
	return fmt.Sprintf(ErrOnlyApprovedCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDai,
		RolePending,
	}

	// Role yang sudah di-approve (boleh pakai fitur dakwah)
	ApprovedRoles = []string{
		RoleAdmin,
		RoleDai,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole memeriksa role yang dikenal (dipakai saat admin ganti role user)
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
