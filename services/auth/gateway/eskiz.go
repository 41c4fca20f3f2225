package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/utils"
)

type eskizLoginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type eskizSendResponse struct {
	Status string `json:"status"`
}

// GetToken returns the cached provider token, logging in when none is cached.
// ok is false when no token could be obtained for any reason.
func (g *EskizGW) GetToken(ctx context.Context) (string, bool) {
	token, found, err := g.store.Get(ctx, constants.KeyEskizToken)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to read cached Eskiz token", logger.Err(err))
		return "", false
	}
	if found && token != "" {
		return token, true
	}

	if !g.cfg.HasCredentials() {
		logger.WarnCtx(ctx, "Eskiz credentials are not configured")
		return "", false
	}

	form := url.Values{}
	form.Set("email", g.cfg.Email)
	form.Set("password", g.cfg.Password)

	resp, err := g.client.PostForm(ctx, "/auth/login", form, nil)
	if err != nil {
		logger.ErrorCtx(ctx, "Eskiz login request failed", logger.Err(err))
		return "", false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.ErrorCtx(ctx, "Eskiz login rejected",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(resp.Body)))
		return "", false
	}

	var login eskizLoginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil || login.Data.Token == "" {
		logger.ErrorCtx(ctx, "Eskiz login response has no token", logger.String("body", string(resp.Body)))
		return "", false
	}

	if err := g.store.Set(ctx, constants.KeyEskizToken, login.Data.Token, constants.EskizTokenTTL); err != nil {
		logger.ErrorCtx(ctx, "Failed to cache Eskiz token", logger.Err(err))
		return "", false
	}

	logger.InfoCtx(ctx, "Obtained new Eskiz token")
	return login.Data.Token, true
}

// SendMessage sends text to phone and reports whether the provider accepted it
func (g *EskizGW) SendMessage(ctx context.Context, phone, text string) bool {
	phone = utils.StripPhoneSeparators(phone)

	token, ok := g.GetToken(ctx)
	if !ok {
		return false
	}

	form := url.Values{}
	form.Set("mobile_phone", phone)
	form.Set("message", text)
	form.Set("from", g.cfg.From)
	form.Set("callback_url", "")

	resp, err := g.client.PostForm(ctx, "/message/sms/send", form, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Eskiz send request failed",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
		return false
	}

	if resp.StatusCode == http.StatusOK {
		var sent eskizSendResponse
		if err := json.Unmarshal(resp.Body, &sent); err == nil && sent.Status == "success" {
			return true
		}
	}

	logger.ErrorCtx(ctx, "Eskiz did not accept the message",
		logger.String("phone", utils.MaskPhoneNumber(phone)),
		logger.Int("status", resp.StatusCode),
		logger.String("body", string(resp.Body)))

	if resp.StatusCode == http.StatusUnauthorized || strings.Contains(strings.ToLower(string(resp.Body)), "token") {
		// Force a fresh login on the next send
		if err := g.store.Delete(ctx, constants.KeyEskizToken); err != nil {
			logger.WarnCtx(ctx, "Failed to drop cached Eskiz token", logger.Err(err))
		}
	}
	return false
}
