package helper

import "strings"

// IsDuplicateKeyErr mendeteksi pelanggaran unique constraint dari pesan
// error driver (pgx lewat GORM tidak mengekspos kode SQLSTATE di sini).
// Unique index tetap jaminan sebenarnya; helper ini cuma untuk memetakan
// error jadi response 409/400 yang ramah.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
