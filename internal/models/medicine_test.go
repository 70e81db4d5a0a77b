package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryStatusAt(t *testing.T) {
	ref := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	date := func(d time.Time) *time.Time { return &d }

	cases := []struct {
		name   string
		expiry *time.Time
		want   string
	}{
		{"tanpa tanggal kadaluarsa", nil, MedicineNoExpiry},
		{"lewat kemarin", date(ref.AddDate(0, 0, -1)), MedicineExpired},
		{"lewat jauh", date(ref.AddDate(-1, 0, 0)), MedicineExpired},
		{"kadaluarsa hari ini masih dianggap expiring", date(ref), MedicineExpiringSoon},
		{"10 hari lagi", date(ref.AddDate(0, 0, 10)), MedicineExpiringSoon},
		{"tepat 30 hari lagi", date(ref.AddDate(0, 0, 30)), MedicineExpiringSoon},
		{"31 hari lagi", date(ref.AddDate(0, 0, 31)), MedicineGood},
		{"tahun depan", date(ref.AddDate(1, 0, 0)), MedicineGood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Medicine{Name: "Obat", ExpiryDate: tc.expiry}
			assert.Equal(t, tc.want, m.ExpiryStatusAt(ref))
		})
	}
}
