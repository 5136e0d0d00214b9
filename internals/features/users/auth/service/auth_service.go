package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dakwahku_backend/internals/configs"
	"dakwahku_backend/internals/constants"
	authHelper "dakwahku_backend/internals/features/users/auth/helper"
	authModel "dakwahku_backend/internals/features/users/auth/model"
	authRepo "dakwahku_backend/internals/features/users/auth/repository"
	preacherModel "dakwahku_backend/internals/features/users/preacher/model"
	helpers "dakwahku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// ResolveInitialRole menentukan role profil BARU saat sign-in pertama:
// admin kalau email persis sama dengan INITIAL_ADMIN_EMAIL, selain itu pending.
// Kalau env kosong → tidak pernah ada admin otomatis.
func ResolveInitialRole(email, initialAdminEmail string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	initialAdminEmail = strings.ToLower(strings.TrimSpace(initialAdminEmail))
	if initialAdminEmail != "" && email == initialAdminEmail {
		return constants.RoleAdmin
	}
	return constants.RolePending
}

/* ==========================
   REGISTER (fallback non-Google)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.Name, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	newPreacher := preacherModel.PreacherModel{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: passwordHash,
		Role:     ResolveInitialRole(input.Email, configs.InitialAdminEmail),
		IsActive: true,
	}
	if err := authRepo.CreatePreacher(db, &newPreacher); err != nil {
		if helpers.IsDuplicateKeyErr(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	if newPreacher.Role == constants.RoleAdmin {
		log.Printf("[INFO] 🛡️ Admin pertama dibuat untuk %s", newPreacher.Email)
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"id":   newPreacher.ID,
		"role": newPreacher.Role,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	preacher, err := authRepo.FindPreacherByEmail(db, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data akun")
	}
	if err := authHelper.ComparePassword(preacher.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !preacher.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, preacher)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	// Decode claim
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub
	if name == "" {
		name = email
	}

	// Cari by google_id; fallback email (akun lama yang dibuat via register)
	preacher, err := authRepo.FindPreacherByGoogleID(db, googleID)
	if err != nil {
		if byEmail, emailErr := authRepo.FindPreacherByEmail(db, strings.ToLower(email)); emailErr == nil {
			// Link akun lama ke google_id
			byEmail.GoogleID = &googleID
			if claimSet.Picture != "" {
				byEmail.PhotoURL = strptr(claimSet.Picture)
			}
			if err := db.Model(byEmail).Updates(map[string]interface{}{
				"google_id": googleID,
				"photo_url": byEmail.PhotoURL,
			}).Error; err != nil {
				log.Printf("[WARN] Gagal link google_id: %v", err)
			}
			preacher = byEmail
		} else {
			// Profil belum ada → buat baru: pending, atau admin untuk initial admin.
			// Satu read + satu write, role langsung dipakai tanpa round trip ekstra.
			newPreacher := preacherModel.PreacherModel{
				Name:     name,
				Email:    strings.ToLower(email),
				Password: generateDummyPassword(),
				GoogleID: &googleID,
				PhotoURL: strptr(claimSet.Picture),
				Role:     ResolveInitialRole(email, configs.InitialAdminEmail),
				IsActive: true,
			}
			if err := authRepo.CreatePreacher(db, &newPreacher); err != nil {
				if helpers.IsDuplicateKeyErr(err) {
					return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
				}
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
			}
			if newPreacher.Role == constants.RoleAdmin {
				log.Printf("[INFO] 🛡️ Initial admin account created for: %s", newPreacher.Email)
			}
			preacher = &newPreacher
		}
	}

	if !preacher.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, preacher)
}

/* ==========================
   JWT claims & issue
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(p preacherModel.PreacherModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       p.ID.String(),
		"id":        p.ID.String(),
		"user_name": p.Name,
		"email":     p.Email,
		"role":      p.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, preacher *preacherModel.PreacherModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*preacher, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(preacher.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    preacher.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":        preacher.ID,
			"name":      preacher.Name,
			"email":     preacher.Email,
			"role":      preacher.Role,
			"photo_url": preacher.PhotoURL,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshToken := helpers.GetRefreshTokenFromCookie(c)
	if refreshToken == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&input)
		refreshToken = strings.TrimSpace(input.RefreshToken)
	}
	if refreshToken == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Verifikasi signature + exp
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Harus masih terdaftar di DB (hash match, belum direvoke)
	hash := computeRefreshHash(refreshToken, refreshSecret)
	stored, err := authRepo.FindRefreshTokenByHash(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}
	if nowUTC().After(stored.ExpiresAt) {
		_ = authRepo.DeleteRefreshTokenByHash(db, hash)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token kadaluarsa")
	}

	preacher, err := authRepo.FindPreacherByID(db, stored.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	if !preacher.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// Rotasi: hapus yang lama, terbitkan pasangan baru
	_ = authRepo.DeleteRefreshTokenByHash(db, hash)
	return issueTokens(c, db, preacher)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF wajib jika auth via cookie (tanpa Bearer)
	cookieAT := strings.TrimSpace(c.Cookies("access_token"))
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	usesCookieAuth := cookieAT != "" && !strings.HasPrefix(authHeader, "Bearer ")

	if usesCookieAuth {
		if err := helpers.CheckCSRFCookieHeader(c); err != nil {
			return helpers.JsonError(c, fiber.StatusForbidden, err.Error())
		}
	}

	accessToken := helpers.GetRawAccessToken(c)
	ttl := resolveBlacklistTTL(accessToken)

	// Blacklist access token (idempotent)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookies (idempotent)")
	}

	// Hapus refresh token dari DB jika ada di cookie
	if rt := helpers.GetRefreshTokenFromCookie(c); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, refreshSecret))
		}
	}

	// Hapus cookies
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: name != "csrf_token",
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   ME
========================== */

// Me mengembalikan profil + role user yang sedang login.
// Profil hilang = fail closed (401), walau token masih valid.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID := helpers.GetUserUUID(c)
	if userID == uuid.Nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	preacher, err := authRepo.FindPreacherByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Profil tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"id":         preacher.ID,
		"name":       preacher.Name,
		"email":      preacher.Email,
		"role":       preacher.Role,
		"photo_url":  preacher.PhotoURL,
		"created_at": preacher.CreatedAt,
	})
}

/* ==========================
   UTIL
========================== */

func generateDummyPassword() string {
	hash, _ := authHelper.HashPassword(uuid.NewString() + "!Aa1")
	return hash
}
