package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17-08-1995", "1995-08-17"},
		{"5-3-1988", "1988-03-05"},
		{"JAKARTA 17-08-1995", "1995-08-17"},
		// No dashed match: exactly eight digits read as DDMMYYYY.
		{"17081995", "1995-08-17"},
		{"lahir 05031988", "1988-03-05"},
	}
	for _, tc := range cases {
		d := extractDate(tc.in)
		if assert.NotNil(t, d, "input %q", tc.in) {
			assert.Equal(t, tc.want, d.Format("2006-01-02"), "input %q", tc.in)
		}
	}
}

func TestExtractDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{
		"",
		"abc",
		"99-99-9999", // no such month
		"17-08-1900", // before the accepted year range
		"17-08-2101", // after the accepted year range
		"1234567",    // seven digits
		"123456789",  // nine digits
	} {
		assert.Nil(t, extractDate(in), "input %q", in)
	}
}

func TestNormalizeOccupation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"KARYAWAN SWASTA", "Karyawan Swasta"},
		{"karyawan swsta", "Karyawan Swasta"},
		{"WIRASWASTA", "Wiraswasta"},
		{"PEG NEGERI", "Pegawai Negeri"},
		{"PEGAWAI NEGERI SIPIL", "Pegawai Negeri Sipil"},
		{"PELAJAR/MAHASISWA", "Pelajar/Mahasiswa"},
		{"MENGURUS RUMAH TANGGA", "Mengurus Rumah Tangga"},
		// Outside the table: passes through untouched.
		{"DOKTER", "DOKTER"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeOccupation(tc.in), "input %q", tc.in)
	}
}

func TestBuildRecordNIK(t *testing.T) {
	data := buildRecord(map[string]string{FieldNIK: "3171 0234 5678 9012"})
	assert.Equal(t, "3171023456789012", deref(data.NIK))

	data = buildRecord(map[string]string{FieldNIK: "no digits here"})
	assert.Nil(t, data.NIK)
}

func TestBuildRecordName(t *testing.T) {
	// Stray digits and dashes from the NIK row are stripped from names.
	data := buildRecord(map[string]string{FieldNama: "BUDI SANTOSO-3"})
	assert.Equal(t, "BUDI SANTOSO", deref(data.Nama))
}

func TestBuildRecordBirthPlaceDate(t *testing.T) {
	data := buildRecord(map[string]string{FieldTTL: "JAKARTA, 17-08-1995"})
	assert.Equal(t, "JAKARTA", deref(data.TempatLahir))
	if assert.NotNil(t, data.TanggalLahir) {
		assert.Equal(t, "1995-08-17", data.TanggalLahir.Format("2006-01-02"))
	}

	// No ", " separator: the whole string is searched for the date and the
	// place keeps only letters and spaces.
	data = buildRecord(map[string]string{FieldTTL: "BANDUNG 05-03-1988"})
	assert.Equal(t, "BANDUNG", deref(data.TempatLahir))
	if assert.NotNil(t, data.TanggalLahir) {
		assert.Equal(t, "1988-03-05", data.TanggalLahir.Format("2006-01-02"))
	}
}

func TestBuildRecordBirthPlaceTglResidue(t *testing.T) {
	// Some recognizers glue the "/Tgl" label fragment onto the place.
	data := buildRecord(map[string]string{FieldTTL: "SURABAYA/Tgl, 17-08-1995"})
	assert.Equal(t, "SURABAYA", deref(data.TempatLahir))
}

func TestBuildRecordMaritalStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"KAWIN", "KAWIN"},
		{"BELUM KAWIN", "BELUM KAWIN"},
		{"TIDAK KAWIN", "BELUM KAWIN"},
		{"JANDA", "CERAI"},
		{"DUDA", "CERAI"},
		{"CERAI", "CERAI"},
	}
	for _, tc := range cases {
		data := buildRecord(map[string]string{FieldStatusPerkawinan: tc.in})
		assert.Equal(t, tc.want, deref(data.StatusPerkawinan), "input %q", tc.in)
	}

	data := buildRecord(map[string]string{FieldStatusPerkawinan: "UNREADABLE"})
	assert.Nil(t, data.StatusPerkawinan)
}

func TestBuildRecordBloodType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"B", "B"},
		{"AB", "AB"},
		{"O", "O"},
		{"o", "O"},
		// Digits are OCR noise on the blood type and are dropped first.
		{"A1", "A"},
	}
	for _, tc := range cases {
		data := buildRecord(map[string]string{FieldGolDarah: tc.in})
		assert.Equal(t, tc.want, deref(data.GolonganDarah), "input %q", tc.in)
	}

	data := buildRecord(map[string]string{FieldGolDarah: "XY"})
	assert.Nil(t, data.GolonganDarah)
}

func TestBuildRecordCitizenship(t *testing.T) {
	data := buildRecord(map[string]string{FieldKewarganegaraan: "WNI"})
	assert.Equal(t, "INDONESIA", deref(data.Kewarganegaraan))

	data = buildRecord(map[string]string{FieldKewarganegaraan: "WNA"})
	assert.Equal(t, "WNA", deref(data.Kewarganegaraan))
}

func TestBuildRecordEmptyMap(t *testing.T) {
	data := buildRecord(map[string]string{})
	assert.Nil(t, data.NIK)
	assert.Nil(t, data.Nama)
	assert.Nil(t, data.TanggalLahir)
	assert.Nil(t, data.Provinsi)
	assert.Nil(t, data.BerlakuHingga)
}
