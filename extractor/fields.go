package extractor

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Field names as used in the raw field map.
const (
	FieldProvinsi         = "provinsi"
	FieldKota             = "kota"
	FieldNIK              = "nik"
	FieldNama             = "nama"
	FieldTTL              = "ttl"
	FieldJenisKelamin     = "jenis_kelamin"
	FieldGolDarah         = "gol_darah"
	FieldAlamat           = "alamat"
	FieldRTRW             = "rt_rw"
	FieldKelDesa          = "kel_desa"
	FieldKecamatan        = "kecamatan"
	FieldAgama            = "agama"
	FieldStatusPerkawinan = "status_perkawinan"
	FieldPekerjaan        = "pekerjaan"
	FieldKewarganegaraan  = "kewarganegaraan"
	FieldBerlakuHingga    = "berlaku_hingga"
)

// FieldSpec ties a field to the printed label it anchors on and the edit
// distance accepted when locating that label.
type FieldSpec struct {
	Name      string
	Keyword   string
	Tolerance int
}

// fieldSpecs is the fixed extraction table for the KTP layout. The kota
// keyword is "kabupaten"; district headers reading "KOTA ..." are handled
// by the locator's bounded fallback.
var fieldSpecs = []FieldSpec{
	{FieldProvinsi, "provinsi", 2},
	{FieldKota, "kabupaten", 2},
	{FieldNIK, "nik", 1},
	{FieldNama, "nama", 2},
	{FieldTTL, "tempat/tgl", 5},
	{FieldJenisKelamin, "kelamin", 3},
	{FieldGolDarah, "darah", 3},
	{FieldAlamat, "alamat", 2},
	{FieldRTRW, "rt/rw", 3},
	{FieldKelDesa, "kel/desa", 4},
	{FieldKecamatan, "kecamatan", 3},
	{FieldAgama, "agama", 3},
	{FieldStatusPerkawinan, "perkawinan", 4},
	{FieldPekerjaan, "pekerjaan", 4},
	{FieldKewarganegaraan, "kewarganegaraan", 4},
	{FieldBerlakuHingga, "berlaku", 4},
}

// resolutionContext carries the one piece of state shared between fields
// within a single extraction: the right edge of the NIK digits, used to
// cut card-footer noise out of the pekerjaan row. A fresh context must be
// created for every Extract call; two concurrent extractions sharing one
// would corrupt each other's pekerjaan filtering.
type resolutionContext struct {
	maxX float64
}

func newResolutionContext() *resolutionContext {
	return &resolutionContext{maxX: math.MaxFloat64}
}

// resolveField applies the per-field policy to the collected value tokens
// and returns the raw field string. ok is false when the field cannot be
// resolved confidently.
func resolveField(spec FieldSpec, keyword string, values []Token, rctx *resolutionContext) (string, bool) {
	switch spec.Name {
	case FieldNIK:
		if len(values) > 0 {
			maxX := values[0].X2
			for _, t := range values[1:] {
				if t.X2 > maxX {
					maxX = t.X2
				}
			}
			rctx.maxX = maxX
		}

	case FieldKota:
		value := joinLabels(values)
		if keyword == "kabupaten" {
			return "KABUPATEN " + value, true
		}
		return "KOTA " + value, true

	case FieldTTL:
		// The label spans several tokens ("Tempat/Tgl" "Lahir"); strip
		// the one fragment that slipped into the value row, if any.
		for _, kw := range []string{"lahir", "tempat/tgl", "tempat", "tgl"} {
			var removed bool
			if values, removed = removeClosest(values, kw, 2); removed {
				break
			}
		}

	case FieldJenisKelamin:
		for _, t := range values {
			label := strings.ToLower(t.Label)
			switch {
			case Distance("laki-laki", label) <= 2:
				return "LAKI-LAKI", true
			case Distance("laki", label) <= 1:
				return "LAKI-LAKI", true
			case Distance("wanita", label) <= 2:
				return "PEREMPUAN", true
			case Distance("perempuan", label) <= 2:
				return "PEREMPUAN", true
			}
		}
		return "", false

	case FieldGolDarah:
		for _, t := range values {
			if utf8.RuneCountInString(t.Label) <= 3 {
				return t.Label, true
			}
		}
		return "", false

	case FieldPekerjaan:
		values, _ = removeClosest(values, "kartu", 2)
		kept := values[:0]
		for _, t := range values {
			if t.X1 <= rctx.maxX {
				kept = append(kept, t)
			}
		}
		values = kept

	case FieldKewarganegaraan:
		// Any surviving value token is taken as WNI; the leftmost
		// fallback below is only reachable when none do.
		if len(values) > 0 {
			return "WNI", true
		}
		if t, ok := leftmost(values); ok {
			return t.Label, true
		}
		return "", false

	case FieldStatusPerkawinan:
		t, ok := leftmost(values)
		if !ok {
			return "", false
		}
		if Distance("belum", strings.ToLower(t.Label)) <= 1 {
			return "BELUM KAWIN", true
		}
		return t.Label, true

	case FieldBerlakuHingga:
		values, _ = removeClosest(values, "hingga", 2)
		t, ok := leftmost(values)
		if !ok {
			return "", false
		}
		if Distance("seumur", strings.ToLower(t.Label)) <= 2 {
			return "SEUMUR HIDUP", true
		}
		return t.Label, true
	}

	value := joinLabels(values)
	if value == "" {
		return "", false
	}
	return value, true
}

// joinLabels joins value token labels with single spaces in provider
// order, trimmed.
func joinLabels(values []Token) string {
	labels := make([]string, 0, len(values))
	for _, t := range values {
		labels = append(labels, t.Label)
	}
	return strings.TrimSpace(strings.Join(labels, " "))
}
