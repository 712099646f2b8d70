package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the visual emphasis level of an interactive control.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleOutline   Role = "outline"
	RoleGhost     Role = "ghost"
)

// Size is the control size.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Scheme is a color-scheme context.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

var (
	// ErrUnknownRole is returned for a role outside the enumerated domain.
	ErrUnknownRole = errors.New("unknown button role")
	// ErrUnknownSize is returned for a size outside the enumerated domain.
	ErrUnknownSize = errors.New("unknown button size")
	// ErrUnknownScheme is returned for a scheme other than light or dark.
	ErrUnknownScheme = errors.New("unknown color scheme")
)

var (
	roles   = [...]Role{RolePrimary, RoleSecondary, RoleOutline, RoleGhost}
	sizes   = [...]Size{SizeSmall, SizeMedium, SizeLarge}
	schemes = [...]Scheme{SchemeLight, SchemeDark}
)

// Roles lists every role in display order.
func Roles() []Role {
	r := roles
	return r[:]
}

// Sizes lists every size from smallest to largest.
func Sizes() []Size {
	s := sizes
	return s[:]
}

// Schemes lists both color-scheme contexts.
func Schemes() []Scheme {
	s := schemes
	return s[:]
}

// Label is the human-readable role name.
func (r Role) Label() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// Label is the human-readable size name.
func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	}
	return string(s)
}

// ParseRole validates a role name at the boundary.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := roleColors[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
	return r, nil
}

// ParseSize validates a size name at the boundary. Both the short (sm) and
// long (small) spellings are accepted.
func ParseSize(raw string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sm", "small":
		return SizeSmall, nil
	case "md", "medium":
		return SizeMedium, nil
	case "lg", "large":
		return SizeLarge, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSize, raw)
}

// ParseScheme validates a color-scheme name.
func ParseScheme(raw string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(raw)))
	if s != SchemeLight && s != SchemeDark {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, raw)
	}
	return s, nil
}

// Resolve returns the attribute bundle for role and size.
func Resolve(role Role, size Size) (Bundle, error) {
	colors, ok := roleColors[role]
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	spacing, ok := sizeSpacing[size]
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}

	return Bundle{
		Role:        role,
		Size:        size,
		BorderWidth: colors.borderWidth,
		Light:       colors.light,
		Dark:        colors.dark,
		Spacing:     spacing,
	}, nil
}

// MustResolve is Resolve for statically known inputs. It panics on an
// unknown role or size.
func MustResolve(role Role, size Size) Bundle {
	b, err := Resolve(role, size)
	if err != nil {
		panic(err)
	}
	return b
}
