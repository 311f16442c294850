//go:build debug_xrswap

package collection

// debugValidate calls Validate on the collection and panics if it fails. This method no-ops
// unless the debug_xrswap build tag is present.
func debugValidate(c *ImageCollection) {
	err := c.Validate()
	if err != nil {
		panic(err)
	}
}
