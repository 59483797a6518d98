package impl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"majorexplorer/config"
	domainerrors "majorexplorer/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// passwordPolicy applies the optional signup input requirements. A nil config accepts everything.
type passwordPolicy struct {
	cfg      *config.PasswordStrengthConfig
	validate *validator.Validate
}

func newPasswordPolicy(cfg *config.Config) *passwordPolicy {
	policy := &passwordPolicy{validate: validator.New()}
	if cfg != nil {
		policy.cfg = cfg.PasswordStrength
	}

	return policy
}

// checkEmail enforces the email format when the policy asks for it.
func (p *passwordPolicy) checkEmail(email string) error {
	if p.cfg == nil || !p.cfg.RequireEmailFormat {
		return nil
	}
	if err := p.validate.Var(email, "email"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Invalid email format")
	}

	return nil
}

// checkPassword reports the first unmet requirement.
func (p *passwordPolicy) checkPassword(password string) error {
	if p.cfg == nil {
		return nil
	}

	length := utf8.RuneCountInString(password)
	if p.cfg.MinLength > 0 && length < p.cfg.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("Password must be at least %d characters long", p.cfg.MinLength))
	}
	if p.cfg.MaxLength > 0 && length > p.cfg.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("Password must be at most %d characters long", p.cfg.MaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if p.cfg.RequireUppercase && !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if p.cfg.RequireLowercase && !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if p.cfg.RequireNumbers && !hasDigit {
		missing = append(missing, "one number")
	}
	if p.cfg.RequireSpecial && !hasSpecial {
		missing = append(missing, "one special character")
	}
	if len(missing) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"Password must contain at least " + strings.Join(missing, ", "))
	}

	return nil
}
