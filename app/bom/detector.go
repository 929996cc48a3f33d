package bom

import "strings"

const (
	referenceMarker  = "Reference"
	vendorPartMarker = "LCSC #"
)

// Detect classifies a KiCAD BOM by its raw header line. A header carrying
// both the reference column and a vendor part column is the enhanced
// comma-delimited export; everything else is treated as the semicolon
// delimited simple export.
func Detect(headerLine string) Dialect {
	if strings.Contains(headerLine, referenceMarker) && strings.Contains(headerLine, vendorPartMarker) {
		return DialectEnhanced
	}
	return DialectSimple
}
