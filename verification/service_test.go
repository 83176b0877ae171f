package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

type recordingSMS struct {
	to   string
	body string
	err  error
}

func (r *recordingSMS) SendSMS(_ context.Context, to, body string) error {
	r.to = to
	r.body = body
	return r.err
}

func fixedService(sms SMSSender) *Service {
	svc := NewService(sms, nil, "+1")
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	svc.genCode = func() string { return "123456" }
	return svc
}

func TestSendSMSCode(t *testing.T) {
	sms := &recordingSMS{}
	svc := fixedService(sms)
	sess := models.NewSessionData()

	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))

	assert.Equal(t, "+15551234567", sms.to)
	assert.Contains(t, sms.body, "123456")
	stored, ok := sess.VerificationCodes["sms:5551234567"]
	require.True(t, ok)
	assert.Equal(t, "123456", stored.Code)
}

func TestSendSMSCodeInvalidNumber(t *testing.T) {
	svc := fixedService(&recordingSMS{})
	sess := models.NewSessionData()
	assert.Error(t, svc.SendSMSCode(context.Background(), &sess, "12345"))
	assert.Empty(t, sess.VerificationCodes)
}

func TestSendSMSCodeProviderFailure(t *testing.T) {
	svc := fixedService(&recordingSMS{err: errors.New("gateway down")})
	sess := models.NewSessionData()
	assert.Error(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))
}

func TestSendSMSCodeNoProvider(t *testing.T) {
	// without a provider the code is only logged, and verify still works
	svc := fixedService(nil)
	sess := models.NewSessionData()
	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))
	assert.True(t, svc.VerifyCode(&sess, "sms", "5551234567", "123456"))
}

func TestSendCodesKeepsLiveCode(t *testing.T) {
	sms := &recordingSMS{}
	svc := fixedService(sms)
	sess := models.NewSessionData()

	require.NoError(t, svc.SendCodes(context.Background(), &sess, "john@example.com", "5551234567"))
	require.Equal(t, "123456", sess.VerificationCodes["sms:5551234567"].Code)

	// further turns while the code is live neither resend nor rotate it
	sms.to = ""
	svc.genCode = func() string { return "654321" }
	require.NoError(t, svc.SendCodes(context.Background(), &sess, "john@example.com", "5551234567"))
	assert.Empty(t, sms.to)
	assert.Equal(t, "123456", sess.VerificationCodes["sms:5551234567"].Code)

	// once expired, a fresh code goes out
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 11, 0, 0, time.UTC) }
	require.NoError(t, svc.SendCodes(context.Background(), &sess, "john@example.com", "5551234567"))
	assert.Equal(t, "+15551234567", sms.to)
	assert.Equal(t, "654321", sess.VerificationCodes["sms:5551234567"].Code)
}

func TestVerifyCode(t *testing.T) {
	svc := fixedService(nil)
	sess := models.NewSessionData()
	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))

	assert.False(t, svc.VerifyCode(&sess, "sms", "5551234567", "999999"))
	assert.False(t, svc.IsVerified(&sess, "sms", "5551234567"))

	assert.True(t, svc.VerifyCode(&sess, "sms", "5551234567", "123456"))
	assert.True(t, svc.IsVerified(&sess, "sms", "5551234567"))

	// codes are single use
	assert.False(t, svc.VerifyCode(&sess, "sms", "5551234567", "123456"))
	// but the verified flag persists
	assert.True(t, svc.IsVerified(&sess, "sms", "5551234567"))
}

func TestVerifyCodeExpiry(t *testing.T) {
	svc := fixedService(nil)
	sess := models.NewSessionData()
	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))

	svc.now = func() time.Time { return time.Date(2026, 8, 28, 12, 11, 0, 0, time.UTC) }
	assert.False(t, svc.VerifyCode(&sess, "sms", "5551234567", "123456"))
	// expired codes are removed outright
	assert.NotContains(t, sess.VerificationCodes, "sms:5551234567")
}

func TestVerifyCodeKindsAreSeparate(t *testing.T) {
	svc := fixedService(nil)
	sess := models.NewSessionData()
	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))

	assert.False(t, svc.VerifyCode(&sess, "email", "5551234567", "123456"))
}

func TestSessionVerifier(t *testing.T) {
	svc := fixedService(nil)
	sess := models.NewSessionData()
	require.NoError(t, svc.SendSMSCode(context.Background(), &sess, "5551234567"))
	require.True(t, svc.VerifyCode(&sess, "sms", "5551234567", "123456"))

	v := SessionVerifier{Sess: &sess}
	assert.True(t, v.IsPhoneVerified(context.Background(), "5551234567"))
	assert.False(t, v.IsPhoneVerified(context.Background(), "5550000000"))
}

func TestRandomCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := randomCode()
		assert.Len(t, code, 6)
	}
}
