package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantCatalog = []string{
	"09:00-10:00", "10:00-11:00", "11:00-12:00",
	"14:00-15:00", "15:00-16:00", "16:00-17:00",
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, wantCatalog, Catalog())
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0] = "mutated"
	assert.Equal(t, "09:00-10:00", Catalog()[0])
}

func TestWorkDaySlotsWithoutLunch(t *testing.T) {
	d := WorkDay{Start: "08:00", End: "10:00", SlotLength: 30 * time.Minute}
	assert.Equal(t, []string{"08:00-08:30", "08:30-09:00", "09:00-09:30", "09:30-10:00"}, d.Slots())
}

func TestWorkDaySlotsDropPartialTail(t *testing.T) {
	d := WorkDay{Start: "09:00", End: "11:30", SlotLength: time.Hour}
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, d.Slots())
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name   string
		booked []string
		want   []string
	}{
		{"nothing booked", nil, wantCatalog},
		{"some booked", []string{"10:00-11:00", "15:00-16:00"}, []string{"09:00-10:00", "11:00-12:00", "14:00-15:00", "16:00-17:00"}},
		{"everything booked", wantCatalog, []string{}},
		{"unknown slot ignored", []string{"12:00-13:00"}, wantCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Available(tt.booked))
		})
	}
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("14:00-15:00"))
	assert.False(t, IsValidSlot("12:00-13:00"))
	assert.False(t, IsValidSlot(""))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2030-02-28"))
	assert.False(t, IsValidDate("2030-02-30"))
	assert.False(t, IsValidDate("28/02/2030"))
}

func TestSlotStart(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	start, err := SlotStart("2030-06-01", "14:00-15:00", rome)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 1, 14, 0, 0, 0, rome), start)

	_, err = SlotStart("2030-06-01", "9", rome)
	assert.Error(t, err)
}
