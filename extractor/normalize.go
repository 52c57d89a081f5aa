package extractor

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/adityapw/ktp-ocr-service/dto"
)

var (
	datePattern         = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`)
	tglSeparatorPattern = regexp.MustCompile(`[/\\]\s*[TtIi]gl\s*`)
)

// extractDate parses a birth-date fragment. It prefers a D-M-YYYY match
// anywhere in the string, then falls back to reading exactly eight
// consecutive digits as DDMMYYYY. Years outside [1910, 2100] and
// unparsable input yield nil, never an error.
func extractDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	var parsed time.Time
	var err error

	if raw := datePattern.FindString(s); raw != "" {
		parsed, err = time.Parse("2-1-2006", raw)
	} else {
		var digits strings.Builder
		for _, r := range s {
			if unicode.IsDigit(r) {
				digits.WriteRune(r)
			}
		}
		d := digits.String()
		if len(d) != 8 {
			return nil
		}
		parsed, err = time.Parse("02-01-2006", d[0:2]+"-"+d[2:4]+"-"+d[4:8])
	}
	if err != nil {
		return nil
	}
	if parsed.Year() < 1910 || parsed.Year() > 2100 {
		return nil
	}
	return &parsed
}

type occupationEntry struct {
	key       string
	canonical string
	tolerance int
}

// occupationTable canonicalizes the free-text pekerjaan value against the
// forms printed on cards. Iteration order is significant: the first entry
// within tolerance wins, so the more specific keys come first.
var occupationTable = []occupationEntry{
	{"mengurus rumah tangga", "Mengurus Rumah Tangga", 6},
	{"buruh harian lepas", "Buruh Harian Lepas", 6},
	{"pegawai negeri sipil", "Pegawai Negeri Sipil", 5},
	{"pelajar/mahasiswa", "Pelajar/Mahasiswa", 4},
	{"pelajar/mhs", "Pelajar/Mahasiswa", 3},
	{"belum/tidak bekerja", "Belum/Tidak Bekerja", 5},
	{"karyawan swasta", "Karyawan Swasta", 4},
	{"pegawai negeri", "Pegawai Negeri", 4},
	{"wiraswasta", "Wiraswasta", 3},
	{"peg negeri", "Pegawai Negeri", 3},
	{"peg swasta", "Pegawai Swasta", 3},
}

// normalizeOccupation maps an OCR occupation string onto its canonical
// form. Unmatched text passes through unchanged.
func normalizeOccupation(occ string) string {
	if occ == "" {
		return occ
	}
	lower := strings.ToLower(occ)
	for _, entry := range occupationTable {
		if Distance(entry.key, lower) <= entry.tolerance {
			return entry.canonical
		}
	}
	return occ
}

// buildRecord turns the raw field map into the typed record, applying the
// per-field normalization rules. Missing or unparsable fields stay nil.
func buildRecord(raw map[string]string) dto.KTPData {
	var data dto.KTPData

	if v := raw[FieldNIK]; v != "" {
		data.NIK = nonEmpty(keepDigits(v))
	}

	if v := raw[FieldNama]; v != "" {
		name := strings.ReplaceAll(stripDigits(v), "-", "")
		data.Nama = nonEmpty(strings.TrimSpace(name))
	}

	switch raw[FieldJenisKelamin] {
	case "LAKI-LAKI":
		data.JenisKelamin = strPtr("LAKI-LAKI")
	case "WANITA", "PEREMPUAN":
		data.JenisKelamin = strPtr("PEREMPUAN")
	}

	if v := raw[FieldTTL]; v != "" {
		parts := strings.Split(v, ", ")
		place := parts[0]
		dateText := v
		if len(parts) >= 2 {
			dateText = parts[1]
		}
		if d := extractDate(dateText); d != nil {
			data.TanggalLahir = dto.NewDate(*d)
		}

		place = tglSeparatorPattern.ReplaceAllString(place, "")
		place = keepLettersAndSpace(place)
		data.TempatLahir = nonEmpty(strings.ToUpper(strings.TrimSpace(place)))
	}

	if v := raw[FieldKewarganegaraan]; v != "" {
		if v == "WNI" {
			data.Kewarganegaraan = strPtr("INDONESIA")
		} else {
			data.Kewarganegaraan = strPtr(v)
		}
	}

	if v := raw[FieldStatusPerkawinan]; v != "" {
		lower := strings.ToLower(v)
		switch {
		case Distance("belum kawin", lower) <= 2 || Distance("tidak kawin", lower) <= 2:
			data.StatusPerkawinan = strPtr("BELUM KAWIN")
		case Distance("kawin", lower) <= 1:
			data.StatusPerkawinan = strPtr("KAWIN")
		case Distance("janda", lower) <= 2 || Distance("duda", lower) <= 2 || Distance("cerai", lower) <= 2:
			data.StatusPerkawinan = strPtr("CERAI")
		}
	}

	if v := raw[FieldPekerjaan]; v != "" {
		data.Pekerjaan = nonEmpty(normalizeOccupation(v))
	}

	if v := raw[FieldGolDarah]; v != "" {
		blood := strings.TrimSpace(stripDigits(v))
		switch strings.ToLower(blood) {
		case "a", "b", "ab", "o":
			data.GolonganDarah = strPtr(strings.ToUpper(blood))
		}
	}

	data.Provinsi = nonEmpty(raw[FieldProvinsi])
	data.Kota = nonEmpty(raw[FieldKota])
	data.Alamat = nonEmpty(raw[FieldAlamat])
	data.RTRW = nonEmpty(raw[FieldRTRW])
	data.KelurahanDesa = nonEmpty(raw[FieldKelDesa])
	data.Kecamatan = nonEmpty(raw[FieldKecamatan])
	data.Agama = nonEmpty(raw[FieldAgama])
	data.BerlakuHingga = nonEmpty(raw[FieldBerlakuHingga])

	return data
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepLettersAndSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func strPtr(s string) *string {
	return &s
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
