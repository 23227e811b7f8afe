package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManualPlace(t *testing.T) {
	p, err := NewManualPlace("  Blue Note  ", "Main St 1", "jazz club", 52.23, 21.01, "", "https://bluenote.example")
	require.NoError(t, err)

	assert.Equal(t, "Blue Note", p.Name)
	assert.Equal(t, SynthesizeID("Blue Note"), p.ID)
	assert.Equal(t, NotAvailable, p.Phone)
	assert.Equal(t, "https://bluenote.example", p.Website)
}

func TestNewManualPlace_Validation(t *testing.T) {
	_, err := NewManualPlace("", "Main St 1", "cafe", 0, 0, "", "")
	assert.Error(t, err)

	_, err = NewManualPlace("Cafe", "   ", "cafe", 0, 0, "", "")
	assert.Error(t, err)

	_, err = NewManualPlace("Cafe", "Main St 1", "", 0, 0, "", "")
	assert.Error(t, err)
}

func TestSynthesizeID_StablePerName(t *testing.T) {
	first := SynthesizeID("Blue Note")
	assert.Equal(t, first, SynthesizeID("Blue Note"))
	assert.NotEqual(t, first, SynthesizeID("Green Note"))
	assert.Len(t, first, len("manual_")+6)
	assert.Contains(t, first, "manual_")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, NotAvailable, Normalize(""))
	assert.Equal(t, NotAvailable, Normalize("   "))
	assert.Equal(t, "+48 123 456 789", Normalize("+48 123 456 789"))
}
