package resourceurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_URLRoundTrip(t *testing.T) {
	b := New("http://kic.example.com/")
	id := NewUUID()

	url := b.URL(ContactMomenten, id)
	assert.Equal(t, "http://kic.example.com/api/v1/contactmomenten/"+id, url)

	got, ok := b.UUID(ContactMomenten, url)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = b.UUID(ContactMomenten, url+"/")
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestBuilder_UUIDRejectsForeignURLs(t *testing.T) {
	b := New("http://kic.example.com")
	id := NewUUID()

	cases := map[string]string{
		"other collection": b.URL(Verzoeken, id),
		"other host":       "http://zrc.example.com/api/v1/contactmomenten/" + id,
		"not a uuid":       b.URL(ContactMomenten, "abc"),
		"empty":            "",
	}
	for name, url := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := b.UUID(ContactMomenten, url)
			assert.False(t, ok)
		})
	}
}
