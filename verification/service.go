// Package verification issues and checks the one-time codes that gate the
// results phase. Codes live in the session record with a 10 minute expiry;
// only SMS verification is required by product rule, email is stored but not
// verified.
package verification

import (
    "context"
    "fmt"
    "log"
    "math/rand"
    "time"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

const codeTTL = 10 * time.Minute

type EmailSender interface {
    SendEmail(ctx context.Context, to, subject, html string) error
}

type Service struct {
    sms                SMSSender
    email              EmailSender
    defaultCountryCode string

    // injectable for tests
    now     func() time.Time
    genCode func() string
}

func NewService(sms SMSSender, email EmailSender, defaultCountryCode string) *Service {
    if defaultCountryCode == "" {
        defaultCountryCode = "+1"
    }
    return &Service{
        sms:                sms,
        email:              email,
        defaultCountryCode: defaultCountryCode,
        now:                time.Now,
        genCode:            randomCode,
    }
}

func randomCode() string {
    return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

func codeKey(kind, identifier string) string {
    return kind + ":" + identifier
}

// SendCodes starts verification for a session: an SMS code goes out, the
// email address is kept on record without a code. An unexpired pending code
// is left alone so chatter during the verification phase does not invalidate
// the code the user is about to enter.
func (s *Service) SendCodes(ctx context.Context, sess *models.SessionData, email, phone string) error {
    if stored, ok := sess.VerificationCodes[codeKey("sms", phone)]; ok && stored.Expiry.After(s.now()) {
        return nil
    }
    if err := s.SendSMSCode(ctx, sess, phone); err != nil {
        return err
    }
    log.Printf("email stored for results delivery (no verification required)")
    _ = email
    return nil
}

func (s *Service) SendSMSCode(ctx context.Context, sess *models.SessionData, phone string) error {
    if !IsValidPhoneNumber(phone) {
        return fmt.Errorf("invalid phone number format")
    }
    formatted := FormatPhoneToE164(phone, s.defaultCountryCode)

    code := s.genCode()
    s.storeCode(sess, "sms", phone, code)

    if s.sms == nil {
        // no provider configured; the code still lands in the session so the
        // verify endpoint works in development
        log.Printf("SMS sender not configured, code for %s: %s", phone, code)
        return nil
    }
    body := fmt.Sprintf("Your mortgage pre-qualification verification code is: %s", code)
    if err := s.sms.SendSMS(ctx, formatted, body); err != nil {
        log.Printf("send sms to %s: %v", formatted, err)
        return err
    }
    return nil
}

func (s *Service) SendEmailCode(ctx context.Context, sess *models.SessionData, email string) error {
    code := s.genCode()
    s.storeCode(sess, "email", email, code)
    if s.email == nil {
        log.Printf("email sender not configured, code for %s: %s", email, code)
        return nil
    }
    html := fmt.Sprintf(`<h2>Verification Code</h2><p>Your verification code is:</p><h1>%s</h1><p>This code will expire in 10 minutes.</p>`, code)
    return s.email.SendEmail(ctx, email, "Your Mortgage Pre-Qualification Verification Code", html)
}

// VerifyCode checks a user-entered code, consuming it on success and
// recording the identifier as verified. Expired codes are removed.
func (s *Service) VerifyCode(sess *models.SessionData, kind, identifier, code string) bool {
    if sess.VerificationCodes == nil {
        return false
    }
    key := codeKey(kind, identifier)
    stored, ok := sess.VerificationCodes[key]
    if !ok {
        return false
    }
    if stored.Expiry.Before(s.now()) {
        delete(sess.VerificationCodes, key)
        return false
    }
    if stored.Code != code {
        return false
    }
    if sess.VerifiedIdentifiers == nil {
        sess.VerifiedIdentifiers = map[string]bool{}
    }
    sess.VerifiedIdentifiers[key] = true
    delete(sess.VerificationCodes, key)
    return true
}

// IsVerified reports whether an identifier already passed verification in
// this session.
func (s *Service) IsVerified(sess *models.SessionData, kind, identifier string) bool {
    return sess.VerifiedIdentifiers[codeKey(kind, identifier)]
}

func (s *Service) storeCode(sess *models.SessionData, kind, identifier, code string) {
    if sess.VerificationCodes == nil {
        sess.VerificationCodes = map[string]models.StoredCode{}
    }
    sess.VerificationCodes[codeKey(kind, identifier)] = models.StoredCode{
        Code:   code,
        Expiry: s.now().Add(codeTTL),
    }
}

// SessionVerifier adapts a session's verified-identifier registry to the
// conversation machine's PhoneVerifier collaborator.
type SessionVerifier struct {
    Sess *models.SessionData
}

func (v SessionVerifier) IsPhoneVerified(_ context.Context, phone string) bool {
    return v.Sess != nil && v.Sess.VerifiedIdentifiers[codeKey("sms", phone)]
}
