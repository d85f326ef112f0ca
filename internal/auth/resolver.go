// Package auth resolves caller credentials into the {role, display name}
// identity the filter pipeline consumes. The engine itself never sees
// credentials, only the resolved identity.
package auth

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/directory"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/normalize"
)

// Mode selects which user credential scheme is active. The feeds' operators
// never settled on one, so both stay supported and config picks.
type Mode string

const (
	// ModePhoneLastFour checks the supplied credential against the last four
	// digits of the caller's directory phone number.
	ModePhoneLastFour Mode = "phone_last4"
	// ModeEmployeeCode checks the credential is the fixed-length numeric
	// employee code and the caller exists in the directory.
	ModeEmployeeCode Mode = "employee_code"
)

// DefaultEmployeeCodeLength is the issued code width in ModeEmployeeCode.
const DefaultEmployeeCodeLength = 6

// ErrUnauthorized is returned for every failed credential check. Callers
// must not learn which part failed.
var ErrUnauthorized = eris.New("auth: unauthorized")

// Resolver performs credential checks against the contact directory.
type Resolver struct {
	AdminSecret        string
	Mode               Mode
	EmployeeCodeLength int
}

// Resolve checks name+credential and returns the caller identity.
// The admin secret grants RoleAdmin regardless of mode; otherwise the active
// mode decides. Every failure path returns ErrUnauthorized.
func (r *Resolver) Resolve(name, credential string, dir *directory.Directory) (model.Identity, error) {
	name = strings.TrimSpace(name)

	if r.AdminSecret != "" && credential == r.AdminSecret {
		if name == "" {
			name = "admin"
		}
		return model.Identity{Role: model.RoleAdmin, DisplayName: name}, nil
	}

	if name == "" || credential == "" {
		return model.Identity{}, ErrUnauthorized
	}

	mode := r.Mode
	if mode == "" {
		mode = ModePhoneLastFour
	}

	switch mode {
	case ModePhoneLastFour:
		last4 := dir.LastFour(name)
		if last4 == "" || credential != last4 {
			return model.Identity{}, ErrUnauthorized
		}
	case ModeEmployeeCode:
		if _, ok := dir.Lookup(name); !ok {
			return model.Identity{}, ErrUnauthorized
		}
		codeLen := r.EmployeeCodeLength
		if codeLen == 0 {
			codeLen = DefaultEmployeeCodeLength
		}
		if len(credential) != codeLen || normalize.PhoneDigits(credential) != credential {
			return model.Identity{}, ErrUnauthorized
		}
	default:
		return model.Identity{}, eris.Errorf("auth: unknown mode %q", mode)
	}

	return model.Identity{Role: model.RoleUser, DisplayName: name}, nil
}
