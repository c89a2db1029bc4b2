package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"
)

const testBotToken = "1234567890:TEST_TOKEN_FOR_SIGNING"

// signInitData reproduces the Telegram Web App signing scheme so tests can
// mint valid init data for any payload.
func signInitData(botToken string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields))
	for key, value := range fields {
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	values := url.Values{}
	for key, value := range fields {
		values.Set(key, value)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func testAuthService() *AuthService {
	return &AuthService{botToken: testBotToken, initDataTTL: 24 * time.Hour}
}

func TestValidateInitData(t *testing.T) {
	svc := testAuthService()

	initData := signInitData(testBotToken, map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
		"user":      `{"id":42,"username":"trainee","first_name":"Sam"}`,
	})

	tgUser, err := svc.validateInitData(initData)
	if err != nil {
		t.Fatalf("validateInitData: %v", err)
	}
	if tgUser.ID != 42 || tgUser.Username != "trainee" {
		t.Errorf("user = %+v", tgUser)
	}
}

func TestValidateInitDataRejectsTampering(t *testing.T) {
	svc := testAuthService()

	initData := signInitData(testBotToken, map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
		"user":      `{"id":42,"username":"trainee"}`,
	})
	tampered := strings.Replace(initData, "trainee", "attacker", 1)

	if _, err := svc.validateInitData(tampered); err == nil {
		t.Fatal("tampered payload accepted")
	}
}

func TestValidateInitDataRejectsWrongBotToken(t *testing.T) {
	svc := testAuthService()

	initData := signInitData("9999999999:OTHER_BOT", map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
		"user":      `{"id":42}`,
	})

	if _, err := svc.validateInitData(initData); err == nil {
		t.Fatal("init data signed by another bot accepted")
	}
}

func TestValidateInitDataRejectsExpired(t *testing.T) {
	svc := testAuthService()

	stale := time.Now().Add(-25 * time.Hour).Unix()
	initData := signInitData(testBotToken, map[string]string{
		"auth_date": fmt.Sprintf("%d", stale),
		"user":      `{"id":42}`,
	})

	if _, err := svc.validateInitData(initData); err == nil {
		t.Fatal("expired init data accepted")
	}
}

func TestValidateInitDataRejectsMissingPieces(t *testing.T) {
	svc := testAuthService()

	if _, err := svc.validateInitData("user=%7B%22id%22%3A42%7D"); err == nil {
		t.Error("init data without hash accepted")
	}

	noUser := signInitData(testBotToken, map[string]string{
		"auth_date": fmt.Sprintf("%d", time.Now().Unix()),
	})
	if _, err := svc.validateInitData(noUser); err == nil {
		t.Error("init data without user payload accepted")
	}

	unconfigured := &AuthService{initDataTTL: time.Hour}
	if _, err := unconfigured.validateInitData("anything"); err == nil {
		t.Error("validation succeeded without a bot token")
	}
}
