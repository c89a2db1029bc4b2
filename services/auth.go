package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// AuthService validates Telegram Mini App init data, issues JWT pairs and
// guards routes.
type AuthService struct {
	context.DefaultService

	jwtSvc   *JWTService
	userRepo *repositories.UserRepository

	botToken    string
	initDataTTL time.Duration
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.botToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	svc.initDataTTL = 24 * time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	if svc.botToken == "" {
		log.Warn("TELEGRAM_BOT_TOKEN not set, Telegram auth will reject all requests")
	}

	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.userRepo = repositories.NewUserRepository(db)
	return nil
}

// TelegramAuth verifies the signed init data and returns a token pair,
// creating the user on first login.
func (svc *AuthService) TelegramAuth(req dto.TelegramAuthRequest) (*dto.AuthResponse, error) {
	tgUser, err := svc.validateInitData(req.InitData)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid Telegram init data")
	}

	isNew := false
	user, err := svc.userRepo.GetUserByTelegramID(tgUser.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user, err = svc.userRepo.CreateUser(*tgUser)
		if err != nil {
			return nil, err
		}
		isNew = true
		log.WithField("telegram_id", tgUser.ID).Info("Registered new user")
	} else {
		// Keep the mirrored Telegram profile fresh on every login.
		if err := svc.userRepo.UpdateTelegramProfile(user, *tgUser); err != nil {
			log.WithError(err).Warn("Failed to refresh Telegram profile")
		}
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:   userToResponse(user),
		IsNew:  isNew,
		Tokens: *tokens,
	}, nil
}

// validateInitData checks the HMAC signature and freshness of the init data
// string per the Telegram Web App login scheme.
func (svc *AuthService) validateInitData(initData string) (*dto.TelegramUser, error) {
	if svc.botToken == "" {
		return nil, errors.New("bot token not configured")
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("malformed init data: %w", err)
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, errors.New("hash missing from init data")
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(svc.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return nil, errors.New("signature mismatch")
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, errors.New("auth_date missing from init data")
	}
	if time.Since(time.Unix(authDate, 0)) > svc.initDataTTL {
		return nil, errors.New("init data expired")
	}

	var tgUser dto.TelegramUser
	if err := sonic.Unmarshal([]byte(values.Get("user")), &tgUser); err != nil {
		return nil, fmt.Errorf("invalid user payload: %w", err)
	}
	if tgUser.ID == 0 {
		return nil, errors.New("user id missing from init data")
	}

	return &tgUser, nil
}

func (svc *AuthService) RefreshToken(req dto.RefreshTokenRequest) (*dto.TokenPair, error) {
	userID, _, err := svc.jwtSvc.VerifyJWTToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid refresh token")
	}

	// The user may have been deactivated since the token was minted.
	user, err := svc.userRepo.GetUser(userID)
	if err != nil || !user.IsActive {
		return nil, shared.NewUnauthorizedError(err, "Account unavailable")
	}

	return svc.jwtSvc.GenerateTokenPair(user.ID, user.Role)
}

func (svc *AuthService) AdminLogin(req dto.AdminLoginRequest) (*dto.TokenPair, error) {
	admin, err := svc.userRepo.GetAdminByUsername(req.Username)
	if err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(err, "Invalid credentials")
	}

	if err := svc.userRepo.UpdateAdminLastLogin(admin.ID); err != nil {
		log.WithError(err).Warn("Failed to record admin login")
	}

	return svc.jwtSvc.GenerateTokenPair(admin.ID, model.RoleAdmin)
}

// RequiredAuth rejects requests without a valid bearer token and stores the
// caller identity in locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}

		userID, role, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		c.Locals(shared.UserID, userID)
		c.Locals(shared.UserRole, role)
		return c.Next()
	}
}

// RequireRole must run after RequiredAuth.
func (svc *AuthService) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got, _ := c.Locals(shared.UserRole).(string)
		if got != role {
			return shared.ResponseJSON(c, fiber.StatusForbidden, "Forbidden", "insufficient privileges")
		}
		return c.Next()
	}
}
