package variant

type roleEntry struct {
	borderWidth int
	light       Colors
	dark        Colors
}

// Role color table. Every role carries a complete light and dark set.
var roleColors = map[Role]roleEntry{
	RolePrimary: {
		light: Colors{Fill: "primary-500", Text: "white", Border: Transparent, Hover: "primary-600", Active: "primary-700"},
		dark:  Colors{Fill: "white", Text: "gray-900", Border: Transparent, Hover: "gray-100", Active: "gray-200"},
	},
	RoleSecondary: {
		light: Colors{Fill: "gray-100", Text: "gray-900", Border: Transparent, Hover: "gray-200", Active: "gray-300"},
		dark:  Colors{Fill: "gray-800", Text: "gray-100", Border: Transparent, Hover: "gray-700", Active: "gray-600"},
	},
	RoleOutline: {
		borderWidth: 2,
		light:       Colors{Fill: Transparent, Text: "primary-500", Border: "primary-500", Hover: "primary-50", Active: "primary-100"},
		dark:        Colors{Fill: Transparent, Text: "primary-300", Border: "primary-300", Hover: "primary-900", Active: "primary-800"},
	},
	RoleGhost: {
		light: Colors{Fill: Transparent, Text: "gray-700", Border: Transparent, Hover: "gray-100", Active: "gray-200"},
		dark:  Colors{Fill: Transparent, Text: "gray-300", Border: Transparent, Hover: "gray-800", Active: "gray-700"},
	},
}

// Size spacing table.
var sizeSpacing = map[Size]Spacing{
	SizeSmall:  {PaddingX: "3", PaddingY: "1.5", FontSize: "sm", CellsX: 1, CellsY: 0},
	SizeMedium: {PaddingX: "4", PaddingY: "2", FontSize: "base", CellsX: 2, CellsY: 0},
	SizeLarge:  {PaddingX: "6", PaddingY: "3", FontSize: "lg", CellsX: 3, CellsY: 1},
}
