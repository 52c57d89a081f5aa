package dto

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component.
// It marshals as "2006-01-02".
type Date struct {
	time.Time
}

// NewDate wraps a time.Time as a Date.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	t, err := time.Parse(`"2006-01-02"`, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// KTPData holds the extracted fields of an Indonesian identity card.
// Every field is optional: extraction is fail-soft and unreadable fields
// stay null rather than guessing.
type KTPData struct {
	NIK              *string `json:"nik"`
	Nama             *string `json:"nama"`
	TempatLahir      *string `json:"tempat_lahir"`
	TanggalLahir     *Date   `json:"tanggal_lahir"`
	JenisKelamin     *string `json:"jenis_kelamin"`
	GolonganDarah    *string `json:"golongan_darah"`
	Alamat           *string `json:"alamat"`
	RTRW             *string `json:"rt_rw"`
	KelurahanDesa    *string `json:"kelurahan_desa"`
	Kecamatan        *string `json:"kecamatan"`
	Agama            *string `json:"agama"`
	StatusPerkawinan *string `json:"status_perkawinan"`
	Pekerjaan        *string `json:"pekerjaan"`
	Kewarganegaraan  *string `json:"kewarganegaraan"`
	BerlakuHingga    *string `json:"berlaku_hingga"`
	Provinsi         *string `json:"provinsi"`
	Kota             *string `json:"kota"`
}

// KTPResponse is the extraction endpoint response.
type KTPResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *KTPData `json:"data"`
}
