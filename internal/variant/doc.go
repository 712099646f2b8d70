// Package variant resolves the presentation attributes of the shared button
// control from its visual role and size.
//
// Resolution is a pure lookup over a closed domain: four roles times three
// sizes, each with a light and a dark color set. Unknown inputs are
// rejected, never defaulted.
//
//	role, err := variant.ParseRole(r.FormValue("variant"))
//	if err != nil {
//		return err
//	}
//	bundle, err := variant.Resolve(role, variant.SizeMedium)
//	if err != nil {
//		return err
//	}
//	button.SetClass(bundle.Classes())
package variant
