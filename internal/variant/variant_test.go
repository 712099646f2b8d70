package variant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTotal(t *testing.T) {
	for _, role := range Roles() {
		for _, size := range Sizes() {
			t.Run(string(role)+"/"+string(size), func(t *testing.T) {
				b, err := Resolve(role, size)
				require.NoError(t, err)

				assert.Equal(t, role, b.Role)
				assert.Equal(t, size, b.Size)
				for _, scheme := range Schemes() {
					assertPopulated(t, scheme, b.Scheme(scheme))
				}
				assert.NotEmpty(t, b.Spacing.PaddingX)
				assert.NotEmpty(t, b.Spacing.PaddingY)
				assert.NotEmpty(t, b.Spacing.FontSize)
				assert.Positive(t, b.Spacing.CellsX)
			})
		}
	}
}

func assertPopulated(t *testing.T, scheme Scheme, c Colors) {
	t.Helper()
	for name, color := range map[string]Color{
		"fill": c.Fill, "text": c.Text, "border": c.Border, "hover": c.Hover, "active": c.Active,
	} {
		require.NotEmpty(t, color, "%s %s color is empty", scheme, name)
		if color == Transparent {
			continue
		}
		_, ok := Hex(color)
		assert.True(t, ok, "%s %s color %q is not in the palette", scheme, name, color)
	}
}

func TestResolveSizeOnlyChangesSpacing(t *testing.T) {
	md, err := Resolve(RolePrimary, SizeMedium)
	require.NoError(t, err)
	lg, err := Resolve(RolePrimary, SizeLarge)
	require.NoError(t, err)

	assert.Equal(t, md.Light, lg.Light)
	assert.Equal(t, md.Dark, lg.Dark)
	assert.Equal(t, md.BorderWidth, lg.BorderWidth)
	assert.NotEqual(t, md.Spacing.PaddingX, lg.Spacing.PaddingX)
	assert.NotEqual(t, md.Spacing.FontSize, lg.Spacing.FontSize)
}

func TestResolveDeterministic(t *testing.T) {
	first := MustResolve(RoleOutline, SizeSmall)
	first.Light.Fill = "error-500"
	first.Spacing.PaddingX = "99"

	second := MustResolve(RoleOutline, SizeSmall)
	assert.Equal(t, Transparent, second.Light.Fill)
	assert.Equal(t, "3", second.Spacing.PaddingX)
}

func TestResolveRejectsUnknown(t *testing.T) {
	_, err := Resolve("danger", SizeMedium)
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = Resolve(RolePrimary, "xl")
	assert.ErrorIs(t, err, ErrUnknownSize)

	_, err = Resolve("", "")
	assert.ErrorIs(t, err, ErrUnknownRole)

	assert.Panics(t, func() { MustResolve(RoleGhost, "huge") })
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    Role
		wantErr bool
	}{
		{raw: "primary", want: RolePrimary},
		{raw: " Secondary ", want: RoleSecondary},
		{raw: "OUTLINE", want: RoleOutline},
		{raw: "ghost", want: RoleGhost},
		{raw: "link", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRole(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    Size
		wantErr bool
	}{
		{raw: "sm", want: SizeSmall},
		{raw: "small", want: SizeSmall},
		{raw: "md", want: SizeMedium},
		{raw: "Medium", want: SizeMedium},
		{raw: "lg", want: SizeLarge},
		{raw: "large", want: SizeLarge},
		{raw: "xl", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSize(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, SchemeDark, s)

	_, err = ParseScheme("sepia")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestBundleClasses(t *testing.T) {
	tests := []struct {
		role    Role
		size    Size
		want    []string
		notWant []string
	}{
		{
			role:    RolePrimary,
			size:    SizeMedium,
			want:    []string{"bg-primary-500", "text-white", "hover:bg-primary-600", "dark:bg-white", "dark:text-gray-900", "px-4", "py-2", "text-base"},
			notWant: []string{"border-2"},
		},
		{
			role: RoleOutline,
			size: SizeLarge,
			want: []string{"border-2", "border-primary-500", "text-primary-500", "dark:border-primary-300", "px-6", "py-3", "text-lg"},
		},
		{
			role: RoleGhost,
			size: SizeSmall,
			want: []string{"bg-transparent", "text-gray-700", "dark:hover:bg-gray-800", "px-3", "py-1.5", "text-sm"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.size), func(t *testing.T) {
			classes := strings.Fields(MustResolve(tt.role, tt.size).Classes())
			assert.Contains(t, classes, "inline-flex")
			assert.Contains(t, classes, "rounded-lg")
			for _, c := range tt.want {
				assert.Contains(t, classes, c)
			}
			for _, c := range tt.notWant {
				assert.NotContains(t, classes, c)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Primary", RolePrimary.Label())
	assert.Equal(t, "Ghost", RoleGhost.Label())
	assert.Equal(t, "Small", SizeSmall.Label())
	assert.Equal(t, "Large", SizeLarge.Label())
}

func TestPalette(t *testing.T) {
	hex, ok := Hex("primary-500")
	require.True(t, ok)
	assert.Equal(t, "#6172F3", hex)

	_, ok = Hex(Transparent)
	assert.False(t, ok)

	assert.Len(t, Scale("primary"), len(PrimaryShades))
	assert.Len(t, Scale("gray"), len(GrayShades))
	for _, step := range GrayShades {
		_, ok := Hex(Shade("gray", step))
		assert.True(t, ok, "gray-%d missing", step)
	}
	for _, scale := range SemanticScales {
		for _, step := range []int{50, 200, 500, 600} {
			_, ok := Hex(Shade(scale, step))
			assert.True(t, ok, "%s-%d missing", scale, step)
		}
	}

	tokens := Tokens()
	assert.IsIncreasing(t, tokens)
}

func TestEnumerationsAreCopies(t *testing.T) {
	Roles()[0] = "mutated"
	Sizes()[0] = "mutated"
	Schemes()[0] = "mutated"

	assert.Equal(t, RolePrimary, Roles()[0])
	assert.Equal(t, SizeSmall, Sizes()[0])
	assert.Equal(t, SchemeLight, Schemes()[0])
}
